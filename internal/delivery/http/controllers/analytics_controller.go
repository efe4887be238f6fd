package controllers

import (
	"log/slog"
	"net/http"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Logger: logger, Service: svc}
}

// EventAnalytics godoc
// @Summary Response statistics of an event
// @Description RSVP counts, dietary counts and public-link responses. Parts that fail to load are null.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the analytics"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /events/{eventID}/analytics [get]
func (c *AnalyticsController) EventAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := c.Service.Event(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, a)
}
