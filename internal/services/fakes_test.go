package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"rsvpportal/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// fakeEventsAPI is an in-memory domain.EventsAPI.
type fakeEventsAPI struct {
	mu        sync.Mutex
	byID      map[string]domain.Event
	order     []string
	nextID    int
	listCalls int
	getCalls  int
	err       error
}

func newFakeEventsAPI(events ...domain.Event) *fakeEventsAPI {
	f := &fakeEventsAPI{byID: make(map[string]domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
		f.order = append(f.order, e.ID)
	}
	return f
}

func (f *fakeEventsAPI) List(ctx context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeEventsAPI) Get(ctx context.Context, id string) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.err != nil {
		return domain.Event{}, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return domain.Event{}, domain.NewAPIError(404, "Event not found", nil)
	}
	return e, nil
}

func (f *fakeEventsAPI) GetPublic(ctx context.Context, id string) (domain.Event, error) {
	return f.Get(ctx, id)
}

func (f *fakeEventsAPI) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Event{}, f.err
	}
	e := eventFromInput(fmt.Sprintf("ev-%d", f.nextID), in)
	f.nextID++
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return e, nil
}

func (f *fakeEventsAPI) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Event{}, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.Event{}, domain.NewAPIError(404, "Event not found", nil)
	}
	e := eventFromInput(id, in)
	f.byID[id] = e
	return e, nil
}

func eventFromInput(id string, in domain.EventInput) domain.Event {
	return domain.Event{
		ID:                id,
		Title:             in.Title,
		Description:       in.Description,
		Date:              in.Date,
		Location:          in.Location,
		Category:          in.Category,
		Capacity:          in.Capacity,
		AllowedCompanions: in.AllowedCompanions,
		HostName:          in.HostName,
		HostMobile:        in.HostMobile,
		HostEmail:         in.HostEmail,
	}
}

// fakeRSVPsAPI is a configurable domain.RSVPsAPI.
type fakeRSVPsAPI struct {
	mu          sync.Mutex
	own         map[string]*domain.RSVP
	getErr      error
	createErr   error
	tokenStatus map[string]domain.ResponseStatus
	statusErr   error
	submitted   []domain.GuestResponse
	submitRes   domain.SubmitResult
	submitErr   error
	// submitGate, when set, blocks SubmitWithToken until it is closed.
	submitGate  chan struct{}
	submitEnter chan struct{}
	dietary     domain.DietaryStats
	dietaryErr  error
	public      []domain.PublicRSVP
	publicErr   error
	getCalls    int
}

func newFakeRSVPsAPI() *fakeRSVPsAPI {
	return &fakeRSVPsAPI{own: map[string]*domain.RSVP{}, tokenStatus: map[string]domain.ResponseStatus{}}
}

func (f *fakeRSVPsAPI) Get(ctx context.Context, eventID string) (*domain.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.own[eventID], nil
}

func (f *fakeRSVPsAPI) Create(ctx context.Context, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	r := &domain.RSVP{ID: "r-" + eventID, EventID: eventID, Status: status}
	f.own[eventID] = r
	return r, nil
}

func (f *fakeRSVPsAPI) SubmitWithToken(ctx context.Context, token string, resp domain.GuestResponse) (domain.SubmitResult, error) {
	if f.submitEnter != nil {
		f.submitEnter <- struct{}{}
	}
	if f.submitGate != nil {
		<-f.submitGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, resp)
	if f.submitErr != nil {
		return domain.SubmitResult{}, f.submitErr
	}
	return f.submitRes, nil
}

func (f *fakeRSVPsAPI) TokenStatus(ctx context.Context, token string) (domain.ResponseStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return domain.ResponseStatus{}, f.statusErr
	}
	return f.tokenStatus[token], nil
}

func (f *fakeRSVPsAPI) SubmitPublic(ctx context.Context, eventID string, resp domain.GuestResponse) (domain.SubmitResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, resp)
	if f.submitErr != nil {
		return domain.SubmitResult{}, f.submitErr
	}
	return f.submitRes, nil
}

func (f *fakeRSVPsAPI) CheckPublic(ctx context.Context, eventID, email string) (domain.ResponseStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return domain.ResponseStatus{}, f.statusErr
	}
	return f.tokenStatus[eventID+"/"+email], nil
}

func (f *fakeRSVPsAPI) DietaryStats(ctx context.Context, eventID string) (domain.DietaryStats, error) {
	return f.dietary, f.dietaryErr
}

func (f *fakeRSVPsAPI) PublicRSVPs(ctx context.Context, eventID string) ([]domain.PublicRSVP, error) {
	return f.public, f.publicErr
}

// fakeTokensAPI is a configurable domain.TokensAPI.
type fakeTokensAPI struct {
	mu         sync.Mutex
	resolved   map[string]domain.ResolvedToken
	resolveErr error
	pages      []domain.TokenPage
	listErr    error
	queries    []domain.TokenQuery
	created    domain.CreatedInvitation
	createErr  error
	createArgs []string
}

func (f *fakeTokensAPI) List(ctx context.Context, eventID string, q domain.TokenQuery) (domain.TokenPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return domain.TokenPage{}, f.listErr
	}
	if q.Page-1 < len(f.pages) {
		return f.pages[q.Page-1], nil
	}
	return domain.TokenPage{Tokens: []domain.InvitationToken{}}, nil
}

func (f *fakeTokensAPI) Create(ctx context.Context, eventID, email, name string) (domain.CreatedInvitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createArgs = []string{eventID, email, name}
	if f.createErr != nil {
		return domain.CreatedInvitation{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeTokensAPI) Resolve(ctx context.Context, token string) (domain.ResolvedToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolveErr != nil {
		return domain.ResolvedToken{}, f.resolveErr
	}
	r, ok := f.resolved[token]
	if !ok {
		return domain.ResolvedToken{}, domain.NewAPIError(404, "Token not found", nil)
	}
	return r, nil
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.RSVPStatus) *domain.RSVPStatus { return &s }
