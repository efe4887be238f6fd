package api

import (
	"context"
	"net/http"
	"net/url"

	"rsvpportal/internal/domain"
)

type eventsAPI struct {
	c *Client
}

// NewEventsAPI returns the remote events endpoints served by c.
func NewEventsAPI(c *Client) domain.EventsAPI {
	return &eventsAPI{c: c}
}

type eventsEnvelope struct {
	Events []domain.Event `json:"events"`
}

type eventEnvelope struct {
	Event domain.Event `json:"event"`
}

func (a *eventsAPI) List(ctx context.Context) ([]domain.Event, error) {
	var out eventsEnvelope
	if err := a.c.get(ctx, "/events", &out); err != nil {
		return nil, err
	}
	if out.Events == nil {
		out.Events = []domain.Event{}
	}
	return out.Events, nil
}

func (a *eventsAPI) Get(ctx context.Context, id string) (domain.Event, error) {
	var out eventEnvelope
	if err := a.c.get(ctx, "/events/"+url.PathEscape(id), &out); err != nil {
		return domain.Event{}, err
	}
	return out.Event, nil
}

func (a *eventsAPI) GetPublic(ctx context.Context, id string) (domain.Event, error) {
	var out eventEnvelope
	err := a.c.do(ctx, request{method: http.MethodGet, path: "/events/public/" + url.PathEscape(id), public: true}, &out)
	if err != nil {
		return domain.Event{}, err
	}
	return out.Event, nil
}

func (a *eventsAPI) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	var out eventEnvelope
	if err := a.c.send(ctx, http.MethodPost, "/events", in, &out); err != nil {
		return domain.Event{}, err
	}
	return out.Event, nil
}

func (a *eventsAPI) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	var out eventEnvelope
	if err := a.c.send(ctx, http.MethodPut, "/events/"+url.PathEscape(id), in, &out); err != nil {
		return domain.Event{}, err
	}
	return out.Event, nil
}
