package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rsvpportal/internal/domain"
)

const (
	invalidInvitationMessage = "Invalid or expired invitation link"
	loadFailedMessage        = "Failed to load event details"
	submitFailedMessage      = "Failed to submit RSVP"
)

// InvitationWorkflow is the state machine behind one invitation token page:
// loading, then error, already_responded, event_passed or awaiting_response,
// and finally submitted.
type InvitationWorkflow struct {
	token  string
	tokens domain.TokensAPI
	rsvps  domain.RSVPsAPI
	now    func() time.Time

	mu         sync.Mutex
	state      domain.InvitationState
	event      *domain.Event
	invitee    *domain.Invitee
	response   *domain.RecordedResponse
	message    string
	errMsg     string
	retryable  bool
	submitting bool
}

// NewInvitationWorkflow returns a workflow for token in the loading state.
func NewInvitationWorkflow(token string, tokens domain.TokensAPI, rsvps domain.RSVPsAPI, now func() time.Time) *InvitationWorkflow {
	if now == nil {
		now = time.Now
	}
	return &InvitationWorkflow{token: token, tokens: tokens, rsvps: rsvps, now: now, state: domain.StateLoading}
}

// Load resolves the token and checks for an existing response. An unknown
// token ends in a non-retryable error state.
func (w *InvitationWorkflow) Load(ctx context.Context) error {
	w.mu.Lock()
	w.state = domain.StateLoading
	w.errMsg = ""
	w.message = ""
	w.mu.Unlock()

	resolved, err := w.tokens.Resolve(ctx, w.token)
	if err != nil {
		w.fail(err, !errors.Is(err, domain.ErrNotFound))
		return fmt.Errorf("failed to resolve invitation: %w", err)
	}
	status, err := w.rsvps.TokenStatus(ctx, w.token)
	if err != nil {
		w.mu.Lock()
		w.event, w.invitee = &resolved.Event, &resolved.Token
		w.mu.Unlock()
		w.fail(err, true)
		return fmt.Errorf("failed to check invitation status: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.event, w.invitee = &resolved.Event, &resolved.Token
	switch {
	case status.HasResponded && status.RSVP != nil:
		w.state = domain.StateAlreadyResponded
		w.response = status.RSVP
	case w.event.HasPassed(w.now()):
		w.state = domain.StateEventPassed
	default:
		w.state = domain.StateAwaitingResponse
	}
	return nil
}

func (w *InvitationWorkflow) fail(err error, retryable bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = domain.StateError
	w.retryable = retryable
	if errors.Is(err, domain.ErrNotFound) {
		w.errMsg = invalidInvitationMessage
		return
	}
	w.errMsg = apiMessage(err, loadFailedMessage)
}

// Submit sends the guest's response. It is only accepted while awaiting a
// response; a failed submission leaves the form open for another attempt.
func (w *InvitationWorkflow) Submit(ctx context.Context, form domain.ResponseForm) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	switch w.state {
	case domain.StateAwaitingResponse:
	case domain.StateEventPassed:
		w.mu.Unlock()
		return domain.ErrEventPassed
	case domain.StateAlreadyResponded, domain.StateSubmitted:
		w.mu.Unlock()
		return fmt.Errorf("%w: a response was already recorded", domain.ErrConflict)
	default:
		w.mu.Unlock()
		return fmt.Errorf("%w: invitation is not ready for a response", domain.ErrConflict)
	}
	resp, msgs := guestResponse(form, *w.event, false)
	if err := domain.NewValidationError(msgs); err != nil {
		w.errMsg = err.Error()
		w.mu.Unlock()
		return err
	}
	w.submitting = true
	w.errMsg = ""
	w.message = ""
	w.mu.Unlock()

	res, err := w.rsvps.SubmitWithToken(ctx, w.token, resp)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.errMsg = apiMessage(err, submitFailedMessage)
		return fmt.Errorf("failed to submit response: %w", err)
	}
	respondedAt := w.now()
	recorded := domain.RecordedResponse{
		Status:                     resp.Status,
		Companions:                 resp.Companions,
		TotalAttendees:             res.RSVP.TotalAttendees,
		GuestName:                  resp.GuestName,
		DietaryPreference:          resp.DietaryPreference,
		CompanionDietaryPreference: resp.CompanionDietaryPreference,
		RespondedAt:                &respondedAt,
	}
	recorded.TotalAttendees = recorded.Attendees()
	w.response = &recorded
	w.message = res.Message
	w.state = domain.StateSubmitted
	return nil
}

// View returns a snapshot of the page state.
func (w *InvitationWorkflow) View() domain.InvitationView {
	w.mu.Lock()
	defer w.mu.Unlock()
	v := domain.InvitationView{
		State:       w.state,
		FormOffered: w.state == domain.StateAwaitingResponse,
		Message:     w.message,
		Error:       w.errMsg,
		Retryable:   w.state == domain.StateError && w.retryable,
	}
	if w.event != nil {
		e := *w.event
		v.Event = &e
	}
	if w.invitee != nil {
		i := *w.invitee
		v.Invitee = &i
	}
	if w.response != nil {
		r := *w.response
		v.Response = &r
	}
	return v
}

type invitationService struct {
	tokens domain.TokensAPI
	rsvps  domain.RSVPsAPI
	now    func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewInvitationService returns the token-gated response page service.
func NewInvitationService(tokens domain.TokensAPI, rsvps domain.RSVPsAPI, now func() time.Time) domain.InvitationService {
	return &invitationService{tokens: tokens, rsvps: rsvps, now: now, inflight: make(map[string]struct{})}
}

func (s *invitationService) View(ctx context.Context, token string) (domain.InvitationView, error) {
	w := NewInvitationWorkflow(token, s.tokens, s.rsvps, s.now)
	err := w.Load(ctx)
	return w.View(), err
}

// Submit reloads the invitation and submits form. Concurrent submissions for
// the same token are refused while one is pending.
func (s *invitationService) Submit(ctx context.Context, token string, form domain.ResponseForm) (domain.InvitationView, error) {
	s.mu.Lock()
	if _, busy := s.inflight[token]; busy {
		s.mu.Unlock()
		return domain.InvitationView{}, domain.ErrSubmissionInFlight
	}
	s.inflight[token] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, token)
		s.mu.Unlock()
	}()

	w := NewInvitationWorkflow(token, s.tokens, s.rsvps, s.now)
	if err := w.Load(ctx); err != nil {
		return w.View(), err
	}
	err := w.Submit(ctx, form)
	return w.View(), err
}
