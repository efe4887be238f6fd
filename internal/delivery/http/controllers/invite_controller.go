package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// InviteRequest is the request body for POST /events/{eventID}/invitations.
type InviteRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements Validator.
func (req InviteRequest) Validate() []string {
	if strings.TrimSpace(req.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

// InviteController manages the invitation list of an event.
type InviteController struct {
	Logger  *slog.Logger
	Service domain.InviteService
}

func NewInviteController(logger *slog.Logger, svc domain.InviteService) *InviteController {
	return &InviteController{Logger: logger, Service: svc}
}

// ListInvitations godoc
// @Summary List invitations of an event
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Search by name or email"
// @Param status query string false "going, maybe, not-going or pending"
// @Param inviteType query string false "private or public"
// @Success 200 {object} helpers.APIResponse "data contains tokens and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /events/{eventID}/invitations [get]
func (c *InviteController) ListInvitations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.TokenQuery{
		PaginationParams: h.ParsePagination(r),
		Search:           q.Get("search"),
		Status:           q.Get("status"),
		InviteType:       q.Get("inviteType"),
	}
	page, err := c.Service.List(r.Context(), r.PathValue("eventID"), query)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, page)
}

// CreateInvitation godoc
// @Summary Invite a guest
// @Description Creates an invitation token; the RSVP API emails it when mail is configured.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body InviteRequest true "Guest email and optional name"
// @Success 201 {object} helpers.APIResponse "data contains the invitation and a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event passed)"
// @Router /events/{eventID}/invitations [post]
func (c *InviteController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req InviteRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Invite(r.Context(), r.PathValue("eventID"), req.Email, req.Name)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, res)
}
