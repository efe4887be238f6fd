package controllers

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
	"rsvpportal/internal/services"
)

var (
	eventFilters = []string{"", "all", "upcoming", "past", "today"}
	eventSorts   = []string{"", "date-asc", "date-desc", "title-asc", "title-desc", "capacity-asc", "capacity-desc"}
)

// EventListResponse is the data of GET /events.
type EventListResponse struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
}

// CategoriesResponse is the data of GET /events/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// RSVPStatusResponse is the caller's own response to one event.
type RSVPStatusResponse struct {
	EventID string             `json:"eventId"`
	Status  *domain.RSVPStatus `json:"status"`
}

// RSVPStatusesResponse maps event ids to the caller's status, null when none.
type RSVPStatusesResponse struct {
	Statuses map[string]*domain.RSVPStatus `json:"statuses"`
}

// RespondRequest is the request body for POST /events/{eventID}/rsvp.
type RespondRequest struct {
	Status domain.RSVPStatus `json:"status"`
}

// Validate implements Validator.
func (req RespondRequest) Validate() []string {
	if !req.Status.Valid() {
		return []string{"status must be one of going, maybe, not-going"}
	}
	return nil
}

// RespondResponse is the data of POST /events/{eventID}/rsvp.
type RespondResponse struct {
	Success bool         `json:"success"`
	RSVP    *domain.RSVP `json:"rsvp"`
}

// EventController serves the host dashboard. Every handler runs against the
// cached workspace of the caller's session.
type EventController struct {
	Logger     *slog.Logger
	Workspaces domain.Workspaces
	Now        func() time.Time
}

func NewEventController(logger *slog.Logger, ws domain.Workspaces) *EventController {
	return &EventController{Logger: logger, Workspaces: ws, Now: time.Now}
}

// ListEvents godoc
// @Summary List the host's events
// @Description Served from the session cache unless refresh is set or the cache is stale. Search matches title, description and location without regard to case.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Param search query string false "Free-text search"
// @Param category query string false "Category, or all"
// @Param filter query string false "all, upcoming, past or today"
// @Param sort query string false "date-asc (default), date-desc, title-asc, title-desc, capacity-asc, capacity-desc"
// @Success 200 {object} helpers.APIResponse "data contains events and total"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	q := r.URL.Query()
	query := domain.EventListQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Filter:   strings.ToLower(q.Get("filter")),
		Sort:     strings.ToLower(q.Get("sort")),
	}
	if !slices.Contains(eventFilters, query.Filter) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "filter must be one of all, upcoming, past, today")
		return
	}
	if !slices.Contains(eventSorts, query.Sort) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "unknown sort "+query.Sort)
		return
	}
	events, err := c.Workspaces.Events(r.Context(), sess).List(r.Context(), h.QueryBool(r, "refresh"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	filtered := services.FilterEvents(events, query, c.Now())
	h.WriteJSONSuccess(w, http.StatusOK, EventListResponse{Events: filtered, Total: len(filtered)})
}

// Categories godoc
// @Summary List event categories
// @Description Distinct categories of the host's events, sorted.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.categories"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /events/categories [get]
func (c *EventController) Categories(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Workspaces.Events(r.Context(), sess).List(r.Context(), false)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CategoriesResponse{Categories: services.Categories(events)})
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventInput true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in domain.EventInput
	if !h.DecodeAndValidate(w, r, &in) {
		return
	}
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	e, err := c.Workspaces.Events(r.Context(), sess).Create(r.Context(), in)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, e)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	e, err := c.Workspaces.Events(r.Context(), sess).Get(r.Context(), eventID)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, e)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event fields. A date in the past is rejected.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body domain.EventInput true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	var in domain.EventInput
	if !h.DecodeAndValidate(w, r, &in) {
		return
	}
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	e, err := c.Workspaces.Events(r.Context(), sess).Update(r.Context(), eventID, in)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, e)
}

// GetMyRSVP godoc
// @Summary Get the caller's RSVP status for an event
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} helpers.APIResponse "data.status is null when not responded"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /events/{eventID}/rsvp [get]
func (c *EventController) GetMyRSVP(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	status, err := c.Workspaces.RSVPs(r.Context(), sess).Status(r.Context(), eventID, h.QueryBool(r, "refresh"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RSVPStatusResponse{EventID: eventID, Status: status})
}

// RespondRSVP godoc
// @Summary Record the caller's RSVP for an event
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body RespondRequest true "going, maybe or not-going"
// @Success 200 {object} helpers.APIResponse "data contains the recorded rsvp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /events/{eventID}/rsvp [post]
func (c *EventController) RespondRSVP(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req RespondRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	rsvp, err := c.Workspaces.RSVPs(r.Context(), sess).Respond(r.Context(), eventID, req.Status)
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RespondResponse{Success: true, RSVP: rsvp})
}

// ListRSVPStatuses godoc
// @Summary Get the caller's RSVP status for several events
// @Description Only stale or missing entries are fetched from the RSVP API, concurrently.
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param event_ids query string true "Comma separated event IDs"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} helpers.APIResponse "data.statuses maps event IDs to status or null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired"
// @Router /rsvps [get]
func (c *EventController) ListRSVPStatuses(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("event_ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "event_ids is required")
		return
	}
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	statuses, err := c.Workspaces.RSVPs(r.Context(), sess).StatusMany(r.Context(), ids, h.QueryBool(r, "refresh"))
	if err != nil {
		h.WriteError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RSVPStatusesResponse{Statuses: statuses})
}
