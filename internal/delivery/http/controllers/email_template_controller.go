package controllers

import (
	"log/slog"
	"net/http"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// TemplateResponse wraps a template; Template is null when none is stored.
type TemplateResponse struct {
	Template *domain.EmailTemplate `json:"template"`
}

// LogoRequest is the request body for POST /email-templates/logo.
type LogoRequest struct {
	LogoData string `json:"logoData"`
}

// Validate implements Validator.
func (req LogoRequest) Validate() []string {
	if req.LogoData == "" {
		return []string{"logoData is required"}
	}
	return nil
}

// LogoResponse is the data of POST /email-templates/logo.
type LogoResponse struct {
	LogoURL string `json:"logoUrl"`
}

type EmailTemplateController struct {
	Logger  *slog.Logger
	Service domain.EmailTemplateService
}

func NewEmailTemplateController(logger *slog.Logger, svc domain.EmailTemplateService) *EmailTemplateController {
	return &EmailTemplateController{Logger: logger, Service: svc}
}

// GetTemplate godoc
// @Summary Get the invitation email template
// @Tags email-templates
// @Produce json
// @Security BearerAuth
// @Param eventId query string false "Event ID; omit for the host default"
// @Success 200 {object} helpers.APIResponse "data.template"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /email-templates [get]
func (c *EmailTemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := c.Service.Get(r.Context(), r.URL.Query().Get("eventId"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, TemplateResponse{Template: t})
}

// SaveTemplate godoc
// @Summary Save the invitation email template
// @Description Colours must be #rrggbb.
// @Tags email-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.EmailTemplate true "Template"
// @Success 200 {object} helpers.APIResponse "data.template"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /email-templates [post]
func (c *EmailTemplateController) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	var t domain.EmailTemplate
	if !h.DecodeAndValidate(w, r, &t) {
		return
	}
	saved, err := c.Service.Save(r.Context(), t)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, TemplateResponse{Template: saved})
}

// UploadLogo godoc
// @Summary Upload the template logo
// @Description Accepts a base64 image data URL of at most 2MB.
// @Tags email-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LogoRequest true "Logo data URL"
// @Success 200 {object} helpers.APIResponse "data.logoUrl"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /email-templates/logo [post]
func (c *EmailTemplateController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	var req LogoRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	url, err := c.Service.UploadLogo(r.Context(), req.LogoData)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LogoResponse{LogoURL: url})
}
