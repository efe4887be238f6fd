package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var testSession = domain.Session{ID: "sess-1", UserID: "user-123", Email: "host@example.com", Role: "admin", AccessToken: "upstream"}

func withSession(ctx context.Context) context.Context {
	return domain.ContextWithSession(ctx, testSession)
}

// decodeEnvelope decodes the response envelope and, when data is non-nil,
// re-decodes envelope.Data into it.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if data != nil && envelope.Data != nil {
		b, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(b, data))
	}
	return envelope
}

type fakeAuthService struct {
	token     string
	session   domain.Session
	err       error
	lastEmail string
	loggedOut []string
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	f.lastEmail = email
	return f.token, f.session, f.err
}

func (f *fakeAuthService) Signup(ctx context.Context, email, password string) (string, domain.Session, error) {
	f.lastEmail = email
	return f.token, f.session, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) {
	f.loggedOut = append(f.loggedOut, sessionID)
}

type fakeEventService struct {
	events    []domain.Event
	listErr   error
	lastForce bool
	getErr    error
	created   domain.Event
	mutateErr error
	lastInput domain.EventInput
	lastID    string
}

func (f *fakeEventService) List(ctx context.Context, force bool) ([]domain.Event, error) {
	f.lastForce = force
	return f.events, f.listErr
}

func (f *fakeEventService) Get(ctx context.Context, id string) (domain.Event, error) {
	f.lastID = id
	if f.getErr != nil {
		return domain.Event{}, f.getErr
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, domain.NewAPIError(404, "Event not found", nil)
}

func (f *fakeEventService) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	f.lastInput = in
	return f.created, f.mutateErr
}

func (f *fakeEventService) Update(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	f.lastID, f.lastInput = id, in
	return f.created, f.mutateErr
}

type fakeRSVPService struct {
	status    *domain.RSVPStatus
	statuses  map[string]*domain.RSVPStatus
	err       error
	lastIDs   []string
	responded domain.RSVPStatus
}

func (f *fakeRSVPService) Status(ctx context.Context, eventID string, force bool) (*domain.RSVPStatus, error) {
	return f.status, f.err
}

func (f *fakeRSVPService) StatusMany(ctx context.Context, eventIDs []string, force bool) (map[string]*domain.RSVPStatus, error) {
	f.lastIDs = eventIDs
	return f.statuses, f.err
}

func (f *fakeRSVPService) Respond(ctx context.Context, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	f.responded = status
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RSVP{ID: "r1", EventID: eventID, Status: status}, nil
}

// fakeWorkspaces hands out the same fake stores to every session.
type fakeWorkspaces struct {
	events *fakeEventService
	rsvps  *fakeRSVPService
	seen   []string
}

func (f *fakeWorkspaces) Events(ctx context.Context, s domain.Session) domain.EventService {
	f.seen = append(f.seen, s.ID)
	return f.events
}

func (f *fakeWorkspaces) RSVPs(ctx context.Context, s domain.Session) domain.RSVPService {
	f.seen = append(f.seen, s.ID)
	return f.rsvps
}

func (f *fakeWorkspaces) Terminate(ctx context.Context, sessionID string) {}

func (f *fakeWorkspaces) IsRevoked(ctx context.Context, sessionID string) bool { return false }

func strPtr(s string) *string { return &s }

func statusPtr(s domain.RSVPStatus) *domain.RSVPStatus { return &s }
