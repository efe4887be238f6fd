package services

import (
	"context"
	"fmt"
	"time"

	"rsvpportal/internal/cache"
	"rsvpportal/internal/domain"
)

const pastDateMessage = "Cannot update event to a past date. Please select a future date and time."

// EventsStore is the cached view of one session's events.
type EventsStore struct {
	api    domain.EventsAPI
	events *cache.Collection[domain.Event]
	now    func() time.Time
}

// NewEventsStore returns an EventsStore reading through api. opts.Key scopes the snapshot.
func NewEventsStore(api domain.EventsAPI, opts cache.Options) *EventsStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &EventsStore{
		api:    api,
		events: cache.NewCollection[domain.Event]("events", api, eventID, opts),
		now:    now,
	}
}

func eventID(e domain.Event) string { return e.ID }

// Restore loads the persisted snapshot.
func (s *EventsStore) Restore(ctx context.Context) error {
	return s.events.Restore(ctx)
}

func (s *EventsStore) List(ctx context.Context, force bool) ([]domain.Event, error) {
	if err := s.events.Fetch(ctx, force); err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return s.events.Items(), nil
}

// Refresh always refetches the list.
func (s *EventsStore) Refresh(ctx context.Context) ([]domain.Event, error) {
	return s.List(ctx, true)
}

func (s *EventsStore) Get(ctx context.Context, id string) (domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	return e, nil
}

func (s *EventsStore) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	in.Normalize()
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return domain.Event{}, err
	}
	e, err := s.api.Create(ctx, in)
	if err != nil {
		s.events.Fail(err)
		return domain.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	s.events.Add(ctx, e)
	return e, nil
}

// Update rejects a date in the past before calling the remote API.
func (s *EventsStore) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	in.Normalize()
	msgs := in.Validate()
	if !in.Date.IsZero() && in.Date.Before(s.now()) {
		msgs = append(msgs, pastDateMessage)
	}
	if err := domain.NewValidationError(msgs); err != nil {
		return domain.Event{}, err
	}
	e, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.events.Fail(err)
		return domain.Event{}, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	s.events.Replace(ctx, e)
	return e, nil
}

// Items returns the cached events without any remote call.
func (s *EventsStore) Items() []domain.Event {
	return s.events.Items()
}

// Err returns the last recorded fetch or mutation error.
func (s *EventsStore) Err() error {
	return s.events.Err()
}

func (s *EventsStore) Clear(ctx context.Context) {
	s.events.Clear(ctx)
}
