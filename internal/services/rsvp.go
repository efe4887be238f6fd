package services

import (
	"context"
	"fmt"

	"rsvpportal/internal/cache"
	"rsvpportal/internal/domain"
)

// RSVPsStore caches one session's own RSVP status per event.
type RSVPsStore struct {
	api      domain.RSVPsAPI
	statuses *cache.Keyed[domain.RSVPStatus]
}

// NewRSVPsStore returns an RSVPsStore reading through api. opts.Key scopes the snapshot.
func NewRSVPsStore(api domain.RSVPsAPI, opts cache.Options) *RSVPsStore {
	s := &RSVPsStore{api: api}
	s.statuses = cache.NewKeyed[domain.RSVPStatus]("rsvps", s.fetch, opts)
	return s
}

func (s *RSVPsStore) fetch(ctx context.Context, eventID string) (*domain.RSVPStatus, error) {
	r, err := s.api.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	status := r.Status
	return &status, nil
}

// Restore loads the persisted snapshot.
func (s *RSVPsStore) Restore(ctx context.Context) error {
	return s.statuses.Restore(ctx)
}

func (s *RSVPsStore) Status(ctx context.Context, eventID string, force bool) (*domain.RSVPStatus, error) {
	st, err := s.statuses.Get(ctx, eventID, force)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rsvp for event %s: %w", eventID, err)
	}
	return st, nil
}

// StatusMany returns the status for every event id, nil where none exists.
func (s *RSVPsStore) StatusMany(ctx context.Context, eventIDs []string, force bool) (map[string]*domain.RSVPStatus, error) {
	if err := s.statuses.FetchMany(ctx, eventIDs, force); err != nil {
		return nil, fmt.Errorf("failed to fetch rsvps: %w", err)
	}
	out := make(map[string]*domain.RSVPStatus, len(eventIDs))
	for _, id := range eventIDs {
		v, _ := s.statuses.Value(id)
		out[id] = v
	}
	return out, nil
}

func (s *RSVPsStore) Respond(ctx context.Context, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError([]string{"status must be one of going, maybe, not-going"})
	}
	r, err := s.api.Create(ctx, eventID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create rsvp for event %s: %w", eventID, err)
	}
	s.statuses.Set(ctx, eventID, &status)
	return r, nil
}

// Set records a status confirmed elsewhere.
func (s *RSVPsStore) Set(ctx context.Context, eventID string, status *domain.RSVPStatus) {
	s.statuses.Set(ctx, eventID, status)
}

func (s *RSVPsStore) Clear(ctx context.Context) {
	s.statuses.Clear(ctx)
}
