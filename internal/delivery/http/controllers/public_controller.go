package controllers

import (
	"log/slog"
	"net/http"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// PublicSubmitResponse is the data of POST /public/events/{eventID}/rsvp.
type PublicSubmitResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	RSVP    domain.RecordedResponse `json:"rsvp"`
}

// PublicController serves the public-link response page.
type PublicController struct {
	Logger  *slog.Logger
	Service domain.PublicRSVPService
}

func NewPublicController(logger *slog.Logger, svc domain.PublicRSVPService) *PublicController {
	return &PublicController{Logger: logger, Service: svc}
}

// GetPublicEvent godoc
// @Summary Get an event by its public link
// @Tags public
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event and whether responses are closed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /public/events/{eventID} [get]
func (c *PublicController) GetPublicEvent(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.Event(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// CheckPublicRSVP godoc
// @Summary Check whether an email already responded
// @Tags public
// @Produce json
// @Param eventID path string true "Event ID"
// @Param email query string true "Guest email"
// @Success 200 {object} helpers.APIResponse "data.hasResponded and data.rsvp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /public/events/{eventID}/rsvp [get]
func (c *PublicController) CheckPublicRSVP(w http.ResponseWriter, r *http.Request) {
	st, err := c.Service.Check(r.Context(), r.PathValue("eventID"), r.URL.Query().Get("email"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, st)
}

// SubmitPublicRSVP godoc
// @Summary Respond through the public link
// @Description Name and email are required. One response per email is enforced by the RSVP API.
// @Tags public
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body domain.ResponseForm true "Response form"
// @Success 201 {object} helpers.APIResponse "data contains the recorded response"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already responded or event passed)"
// @Router /public/events/{eventID}/rsvp [post]
func (c *PublicController) SubmitPublicRSVP(w http.ResponseWriter, r *http.Request) {
	var form domain.ResponseForm
	if !h.DecodeAndValidate(w, r, &form) {
		return
	}
	res, err := c.Service.Submit(r.Context(), r.PathValue("eventID"), form)
	if err != nil {
		h.WriteErrorMessage(w, r, c.Logger, err, userMessageOr(err, "Failed to submit RSVP"))
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, PublicSubmitResponse{Success: true, Message: res.Message, RSVP: res.RSVP})
}
