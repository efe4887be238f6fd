package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvpportal/internal/domain"
)

// memSnapshots is an in-memory domain.SnapshotStore.
type memSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSnapshots() *memSnapshots { return &memSnapshots{data: map[string][]byte{}} }

func (m *memSnapshots) Load(_ context.Context, ns, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[ns+"/"+key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (m *memSnapshots) Save(_ context.Context, ns, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ns+"/"+key] = data
	return nil
}

func (m *memSnapshots) Delete(_ context.Context, ns, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, ns+"/"+key)
	return nil
}

func (m *memSnapshots) Close() error { return nil }

func (m *memSnapshots) has(ns, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[ns+"/"+key]
	return ok
}

func newTestManager(events *fakeEventsAPI, rsvps *fakeRSVPsAPI, store domain.SnapshotStore) *SessionManager {
	return NewSessionManager(SessionManagerConfig{
		Events: events,
		RSVPs:  rsvps,
		Store:  store,
		Now:    fixedNow,
		Logger: testLogger,
	})
}

func TestSessionManager_workspacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventsAPI(domain.Event{ID: "e1"})
	m := newTestManager(events, newFakeRSVPsAPI(), nil)
	a := domain.Session{ID: "sess-a"}
	b := domain.Session{ID: "sess-b"}

	_, err := m.Events(ctx, a).List(ctx, false)
	require.NoError(t, err)
	_, err = m.Events(ctx, a).List(ctx, false)
	require.NoError(t, err)
	_, err = m.Events(ctx, b).List(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 2, events.listCalls)
	assert.Same(t, m.Workspace(ctx, a), m.Workspace(ctx, a))
}

func TestSessionManager_restoresSnapshotsAfterRestart(t *testing.T) {
	ctx := context.Background()
	store := newMemSnapshots()
	events := newFakeEventsAPI(domain.Event{ID: "e1", Title: "Annual Gala"})
	sess := domain.Session{ID: "sess-a"}

	_, err := newTestManager(events, newFakeRSVPsAPI(), store).Events(ctx, sess).List(ctx, false)
	require.NoError(t, err)

	got, err := newTestManager(events, newFakeRSVPsAPI(), store).Events(ctx, sess).List(ctx, false)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Annual Gala", got[0].Title)
	assert.Equal(t, 1, events.listCalls)
}

func TestSessionManager_Terminate(t *testing.T) {
	ctx := context.Background()
	store := newMemSnapshots()
	events := newFakeEventsAPI(domain.Event{ID: "e1"})
	rsvps := newFakeRSVPsAPI()
	m := newTestManager(events, rsvps, store)
	sess := domain.Session{ID: "sess-a"}

	_, err := m.Events(ctx, sess).List(ctx, false)
	require.NoError(t, err)
	_, err = m.RSVPs(ctx, sess).Status(ctx, "e1", false)
	require.NoError(t, err)
	require.True(t, store.has("events", "sess-a"))
	require.True(t, store.has("rsvps", "sess-a"))

	m.Terminate(ctx, "sess-a")

	assert.False(t, store.has("events", "sess-a"))
	assert.False(t, store.has("rsvps", "sess-a"))
	assert.True(t, m.IsRevoked(ctx, "sess-a"))
	assert.False(t, m.IsRevoked(ctx, "sess-b"))

	restarted := newTestManager(events, rsvps, store)
	assert.True(t, restarted.IsRevoked(ctx, "sess-a"), "revocation survives restart")

	m.Terminate(ctx, "sess-a")
	m.Terminate(ctx, "")
}

// movableClock is a test clock advanced by hand.
type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time          { return c.now }
func (c *movableClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClockedManager(events *fakeEventsAPI, store domain.SnapshotStore, clock *movableClock) *SessionManager {
	return NewSessionManager(SessionManagerConfig{
		Events: events,
		RSVPs:  newFakeRSVPsAPI(),
		Store:  store,
		Now:    clock.Now,
		Logger: testLogger,
	})
}

func TestSessionManager_Sweep_dropsExpiredWorkspaces(t *testing.T) {
	ctx := context.Background()
	store := newMemSnapshots()
	clock := &movableClock{now: testNow}
	events := newFakeEventsAPI(domain.Event{ID: "e1"})
	m := newClockedManager(events, store, clock)
	short := domain.Session{ID: "sess-short", ExpiresAt: testNow.Add(time.Hour)}
	long := domain.Session{ID: "sess-long", ExpiresAt: testNow.Add(48 * time.Hour)}

	_, err := m.Events(ctx, short).List(ctx, false)
	require.NoError(t, err)
	_, err = m.Events(ctx, long).List(ctx, false)
	require.NoError(t, err)
	kept := m.Workspace(ctx, long)

	clock.Advance(2 * time.Hour)
	m.Sweep(ctx)

	assert.Len(t, m.workspaces, 1)
	assert.False(t, store.has("events", "sess-short"), "expired snapshot is deleted")
	assert.True(t, store.has("events", "sess-long"))
	assert.Same(t, kept, m.Workspace(ctx, long))
}

func TestSessionManager_Sweep_forgetsExpiredRevocations(t *testing.T) {
	ctx := context.Background()
	store := newMemSnapshots()
	clock := &movableClock{now: testNow}
	m := newClockedManager(newFakeEventsAPI(), store, clock)
	sess := domain.Session{ID: "sess-a", ExpiresAt: testNow.Add(time.Hour)}

	m.Workspace(ctx, sess)
	m.Terminate(ctx, sess.ID)
	require.True(t, m.IsRevoked(ctx, sess.ID))
	require.True(t, store.has(namespaceRevoked, sess.ID))

	clock.Advance(time.Hour)
	m.Sweep(ctx)

	assert.Empty(t, m.revoked)
	assert.Empty(t, m.workspaces)
	assert.False(t, store.has(namespaceRevoked, sess.ID))
	assert.False(t, m.IsRevoked(ctx, sess.ID))
}

func TestSessionManager_IsRevoked_dropsExpiredPersistedRow(t *testing.T) {
	ctx := context.Background()
	store := newMemSnapshots()
	clock := &movableClock{now: testNow}
	sess := domain.Session{ID: "sess-a", ExpiresAt: testNow.Add(time.Hour)}
	first := newClockedManager(newFakeEventsAPI(), store, clock)
	first.Workspace(ctx, sess)
	first.Terminate(ctx, sess.ID)

	restarted := newClockedManager(newFakeEventsAPI(), store, clock)
	require.True(t, restarted.IsRevoked(ctx, sess.ID))

	clock.Advance(2 * time.Hour)
	again := newClockedManager(newFakeEventsAPI(), store, clock)

	assert.False(t, again.IsRevoked(ctx, sess.ID))
	assert.False(t, store.has(namespaceRevoked, sess.ID))
}
