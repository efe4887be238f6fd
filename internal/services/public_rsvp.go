package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rsvpportal/internal/domain"
)

type publicRSVPService struct {
	events domain.EventsAPI
	rsvps  domain.RSVPsAPI
	now    func() time.Time
}

// NewPublicRSVPService returns the public-link response page service.
func NewPublicRSVPService(events domain.EventsAPI, rsvps domain.RSVPsAPI, now func() time.Time) domain.PublicRSVPService {
	if now == nil {
		now = time.Now
	}
	return &publicRSVPService{events: events, rsvps: rsvps, now: now}
}

func (s *publicRSVPService) Event(ctx context.Context, eventID string) (domain.PublicEventView, error) {
	e, err := s.events.GetPublic(ctx, eventID)
	if err != nil {
		return domain.PublicEventView{}, fmt.Errorf("failed to fetch public event %s: %w", eventID, err)
	}
	return domain.PublicEventView{Event: e, Closed: e.HasPassed(s.now())}, nil
}

func (s *publicRSVPService) Check(ctx context.Context, eventID, email string) (domain.ResponseStatus, error) {
	email = strings.TrimSpace(email)
	if !domain.EmailRegexp.MatchString(email) {
		return domain.ResponseStatus{}, domain.NewValidationError([]string{"Please enter a valid email address"})
	}
	st, err := s.rsvps.CheckPublic(ctx, eventID, email)
	if err != nil {
		return domain.ResponseStatus{}, fmt.Errorf("failed to check public rsvp: %w", err)
	}
	return st, nil
}

// Submit validates form against the event and records the response. The
// remote API enforces one response per email.
func (s *publicRSVPService) Submit(ctx context.Context, eventID string, form domain.ResponseForm) (domain.SubmitResult, error) {
	view, err := s.Event(ctx, eventID)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	if view.Closed {
		return domain.SubmitResult{}, domain.ErrEventPassed
	}
	resp, msgs := guestResponse(form, view.Event, true)
	if err := domain.NewValidationError(msgs); err != nil {
		return domain.SubmitResult{}, err
	}
	res, err := s.rsvps.SubmitPublic(ctx, eventID, resp)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("failed to submit public rsvp: %w", err)
	}
	if res.RSVP.Status == "" {
		res.RSVP.Status = resp.Status
		res.RSVP.Companions = resp.Companions
	}
	res.RSVP.TotalAttendees = res.RSVP.Attendees()
	return res, nil
}
