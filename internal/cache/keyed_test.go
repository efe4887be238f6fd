package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvpportal/internal/domain"
)

// fakeStatuses serves a status per key and counts calls per key.
type fakeStatuses struct {
	mu     sync.Mutex
	values map[string]string
	errs   map[string]error
	calls  map[string]int
}

func newFakeStatuses(values map[string]string) *fakeStatuses {
	return &fakeStatuses{values: values, errs: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeStatuses) fetch(_ context.Context, key string) (*string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeStatuses) callsFor(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func newTestKeyed(f *fakeStatuses, clock *fakeClock, store domain.SnapshotStore) *Keyed[string] {
	return NewKeyed[string]("rsvps", f.fetch, Options{Now: clock.Now, Store: store, Key: "session-1"})
}

func strPtr(s string) *string { return &s }

func TestKeyed_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh entry is served from cache", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going"})
		clock := newFakeClock()
		k := newTestKeyed(f, clock, nil)

		v, err := k.Get(ctx, "e1", false)
		require.NoError(t, err)
		clock.Advance(time.Minute)
		v2, err := k.Get(ctx, "e1", false)
		require.NoError(t, err)

		assert.Equal(t, "going", *v)
		assert.Equal(t, "going", *v2)
		assert.Equal(t, 1, f.callsFor("e1"))
	})

	t.Run("negative result is cached", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{})
		k := newTestKeyed(f, newFakeClock(), nil)

		v, err := k.Get(ctx, "e1", false)
		require.NoError(t, err)
		assert.Nil(t, v)
		v, err = k.Get(ctx, "e1", false)
		require.NoError(t, err)
		assert.Nil(t, v)

		assert.Equal(t, 1, f.callsFor("e1"))
		_, fetched := k.Value("e1")
		assert.True(t, fetched)
	})

	t.Run("force and expiry refetch", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "maybe"})
		clock := newFakeClock()
		k := newTestKeyed(f, clock, nil)

		_, err := k.Get(ctx, "e1", false)
		require.NoError(t, err)
		_, err = k.Get(ctx, "e1", true)
		require.NoError(t, err)
		clock.Advance(DefaultTTL)
		_, err = k.Get(ctx, "e1", false)
		require.NoError(t, err)

		assert.Equal(t, 3, f.callsFor("e1"))
	})

	t.Run("transport failure becomes a cached negative", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going"})
		f.errs["e1"] = errors.New("connection refused")
		k := newTestKeyed(f, newFakeClock(), nil)

		v, err := k.Get(ctx, "e1", false)

		require.NoError(t, err)
		assert.Nil(t, v)
		_, fetched := k.Value("e1")
		assert.True(t, fetched)
	})

	t.Run("unauthorized is returned and not cached", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{})
		f.errs["e1"] = fmt.Errorf("get rsvp: %w", domain.ErrUnauthorized)
		k := newTestKeyed(f, newFakeClock(), nil)

		_, err := k.Get(ctx, "e1", false)

		require.ErrorIs(t, err, domain.ErrUnauthorized)
		_, fetched := k.Value("e1")
		assert.False(t, fetched)
	})

	t.Run("successful fetch clears a previous error", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going"})
		f.errs["e1"] = domain.ErrUnauthorized
		k := newTestKeyed(f, newFakeClock(), nil)

		_, err := k.Get(ctx, "e1", false)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		require.ErrorIs(t, k.Err(), domain.ErrUnauthorized)

		delete(f.errs, "e1")
		_, err = k.Get(ctx, "e1", false)
		require.NoError(t, err)

		assert.NoError(t, k.Err())
	})
}

func TestKeyed_FetchMany(t *testing.T) {
	ctx := context.Background()

	t.Run("only stale keys are fetched", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going", "e2": "not-going", "e3": "maybe"})
		clock := newFakeClock()
		k := newTestKeyed(f, clock, nil)
		_, err := k.Get(ctx, "e1", false)
		require.NoError(t, err)

		require.NoError(t, k.FetchMany(ctx, []string{"e1", "e2", "e3", "e2"}, false))

		assert.Equal(t, 1, f.callsFor("e1"))
		assert.Equal(t, 1, f.callsFor("e2"))
		assert.Equal(t, 1, f.callsFor("e3"))
		values := k.Values()
		assert.Equal(t, "not-going", *values["e2"])
		assert.Equal(t, "maybe", *values["e3"])
	})

	t.Run("everything fresh makes no calls", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going"})
		k := newTestKeyed(f, newFakeClock(), nil)
		require.NoError(t, k.FetchMany(ctx, []string{"e1"}, false))

		require.NoError(t, k.FetchMany(ctx, []string{"e1"}, false))

		assert.Equal(t, 1, f.callsFor("e1"))
	})

	t.Run("force refetches all", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going", "e2": "going"})
		k := newTestKeyed(f, newFakeClock(), nil)
		require.NoError(t, k.FetchMany(ctx, []string{"e1", "e2"}, false))

		require.NoError(t, k.FetchMany(ctx, []string{"e1", "e2"}, true))

		assert.Equal(t, 2, f.callsFor("e1"))
		assert.Equal(t, 2, f.callsFor("e2"))
	})

	t.Run("per key failure is a negative", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going", "e2": "going"})
		f.errs["e2"] = errors.New("boom")
		k := newTestKeyed(f, newFakeClock(), nil)

		require.NoError(t, k.FetchMany(ctx, []string{"e1", "e2"}, false))

		values := k.Values()
		assert.Equal(t, "going", *values["e1"])
		assert.Nil(t, values["e2"])
	})

	t.Run("unauthorized aborts the merge", func(t *testing.T) {
		f := newFakeStatuses(map[string]string{"e1": "going"})
		f.errs["e2"] = domain.ErrUnauthorized
		k := newTestKeyed(f, newFakeClock(), nil)

		err := k.FetchMany(ctx, []string{"e1", "e2"}, false)

		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Empty(t, k.Values())
		assert.ErrorIs(t, k.Err(), domain.ErrUnauthorized)
	})
}

func TestKeyed_Set_and_Clear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	f := newFakeStatuses(map[string]string{})
	clock := newFakeClock()
	k := newTestKeyed(f, clock, store)

	k.Set(ctx, "e1", strPtr("going"))
	v, err := k.Get(ctx, "e1", false)
	require.NoError(t, err)
	assert.Equal(t, "going", *v)
	assert.Equal(t, 0, f.callsFor("e1"))
	assert.Equal(t, clock.Now(), k.LastFetched("e1"))

	k.Clear(ctx)

	assert.Empty(t, k.Values())
	assert.True(t, k.LastFetched("e1").IsZero())
	assert.NoError(t, k.Err())
	_, err = store.Load(ctx, "rsvps", "session-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKeyed_persistsAndRestores(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := newFakeClock()
	f := newFakeStatuses(map[string]string{"e1": "going"})
	k := newTestKeyed(f, clock, store)
	require.NoError(t, k.FetchMany(ctx, []string{"e1", "e2"}, false))

	restored := newTestKeyed(f, clock, store)
	require.NoError(t, restored.Restore(ctx))
	require.NoError(t, restored.FetchMany(ctx, []string{"e1", "e2"}, false))

	assert.Equal(t, 1, f.callsFor("e1"))
	assert.Equal(t, 1, f.callsFor("e2"), "restored negative result stays cached")
	v, fetched := restored.Value("e1")
	require.True(t, fetched)
	assert.Equal(t, "going", *v)
}

func TestKeyed_Set_winsOverSlowerFetch(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	entered := make(chan struct{})
	fetch := func(ctx context.Context, key string) (*string, error) {
		close(entered)
		<-release
		return strPtr("not-going"), nil
	}
	k := NewKeyed[string]("rsvps", fetch, Options{Now: newFakeClock().Now})

	done := make(chan error)
	go func() {
		_, err := k.Get(ctx, "e1", true)
		done <- err
	}()
	<-entered
	k.Set(ctx, "e1", strPtr("going"))
	close(release)
	require.NoError(t, <-done)

	v, _ := k.Value("e1")
	assert.Equal(t, "going", *v)
}

func TestKeyed_Restore_keepsLiveEntries(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := newFakeClock()
	f := newFakeStatuses(map[string]string{"e1": "maybe", "e2": "going"})
	require.NoError(t, newTestKeyed(f, clock, store).FetchMany(ctx, []string{"e1", "e2"}, false))

	k := newTestKeyed(f, clock, nil)
	k.snap.store = store
	k.Set(ctx, "e1", strPtr("not-going"))
	require.NoError(t, k.Restore(ctx))

	v, _ := k.Value("e1")
	assert.Equal(t, "not-going", *v, "restored snapshot must not overwrite a newer write")
	v, fetched := k.Value("e2")
	require.True(t, fetched)
	assert.Equal(t, "going", *v)
}
