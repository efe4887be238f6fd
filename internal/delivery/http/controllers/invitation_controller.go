package controllers

import (
	"log/slog"
	"net/http"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// InvitationController serves the token-gated response page. No login is required.
type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{Logger: logger, Service: svc}
}

// ViewInvitation godoc
// @Summary Open an invitation
// @Description Resolves the token and reports the page state: error, already_responded, event_passed or awaiting_response. An error state is still returned with 200; data.retryable tells whether reloading can help.
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} helpers.APIResponse "data contains the invitation view"
// @Router /invitations/{token} [get]
func (c *InvitationController) ViewInvitation(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing token")
		return
	}
	view, err := c.Service.View(r.Context(), token)
	if err != nil && view.State != domain.StateError {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	if err != nil && view.Retryable {
		c.Logger.WarnContext(r.Context(), "invitation load failed", "err", err)
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// SubmitInvitation godoc
// @Summary Respond to an invitation
// @Description Accepted only while the invitation awaits a response. A companion is only allowed when the event allows one; dietary fields are only kept for going responses.
// @Tags invitations
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param body body domain.ResponseForm true "Response form"
// @Success 200 {object} helpers.APIResponse "data contains the submitted view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already responded, event passed or submission in flight)"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /invitations/{token}/rsvp [post]
func (c *InvitationController) SubmitInvitation(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing token")
		return
	}
	var form domain.ResponseForm
	if !h.DecodeAndValidate(w, r, &form) {
		return
	}
	view, err := c.Service.Submit(r.Context(), token, form)
	if err != nil {
		msg := view.Error
		if msg == "" {
			msg = domain.UserMessage(err)
		}
		h.WriteErrorMessage(w, r, c.Logger, err, msg)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}
