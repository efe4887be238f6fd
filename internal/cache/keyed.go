package cache

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"rsvpportal/internal/domain"
)

// FetchFunc loads the value for key. A nil value with a nil error is a
// negative result and is cached like any other.
type FetchFunc[V any] func(ctx context.Context, key string) (*V, error)

// keyedSnapshot is the persisted shape of a Keyed cache.
type keyedSnapshot[V any] struct {
	Values      map[string]*V    `json:"values"`
	FetchedKeys []string         `json:"fetchedKeys"`
	LastFetched map[string]int64 `json:"lastFetched"`
}

// Keyed caches one value per key with per-key fetch times. It is safe for
// concurrent use; writes to different keys are independent.
type Keyed[V any] struct {
	name  string
	fetch FetchFunc[V]
	opts  Options
	snap  snapshotter

	mu          sync.Mutex
	values      map[string]*V
	fetched     map[string]struct{}
	lastFetched map[string]time.Time
	err         error
	loading     int

	seq       uint64
	applied   map[string]uint64
	clearedAt uint64
}

// NewKeyed returns an empty Keyed cache named name.
func NewKeyed[V any](name string, fetch FetchFunc[V], opts Options) *Keyed[V] {
	opts = opts.withDefaults()
	k := &Keyed[V]{
		name:  name,
		fetch: fetch,
		opts:  opts,
		snap:  snapshotter{store: opts.Store, namespace: name, key: opts.Key, logger: opts.Logger},
	}
	k.resetLocked()
	return k
}

// Restore loads the persisted snapshot, if any. Keys already written by a
// fetch or Set keep their newer value.
func (k *Keyed[V]) Restore(ctx context.Context) error {
	var s keyedSnapshot[V]
	ok, err := k.snap.load(ctx, &s)
	if err != nil || !ok {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, v := range s.Values {
		if _, live := k.applied[key]; !live {
			k.values[key] = v
		}
	}
	for _, key := range s.FetchedKeys {
		if _, live := k.applied[key]; !live {
			k.fetched[key] = struct{}{}
		}
	}
	for key, ms := range s.LastFetched {
		if _, live := k.applied[key]; !live {
			k.lastFetched[key] = time.UnixMilli(ms)
		}
	}
	return nil
}

// Get returns the value for key, fetching it unless a fresh entry exists.
// Fetch failures other than domain.ErrUnauthorized are cached as negative
// results and logged; unauthorized errors are returned and not cached.
func (k *Keyed[V]) Get(ctx context.Context, key string, force bool) (*V, error) {
	now := k.opts.Now()

	k.mu.Lock()
	if !force && k.freshLocked(key, now) {
		v := k.values[key]
		k.mu.Unlock()
		k.opts.Metrics.hit(k.name)
		return clone(v), nil
	}
	k.seq++
	gen := k.seq
	k.loading++
	k.err = nil
	k.mu.Unlock()
	k.opts.Metrics.miss(k.name)

	v, err := k.load(ctx, key)

	k.mu.Lock()
	defer k.mu.Unlock()
	k.loading--
	if err != nil {
		k.err = err
		return nil, err
	}
	if k.applyLocked(key, v, gen, now) {
		k.persistLocked(ctx)
	}
	return clone(v), nil
}

// FetchMany fetches every key without a fresh entry concurrently and merges
// the results. Only an unauthorized failure is returned; nothing is merged then.
func (k *Keyed[V]) FetchMany(ctx context.Context, keys []string, force bool) error {
	now := k.opts.Now()

	k.mu.Lock()
	var pending []string
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if force || !k.freshLocked(key, now) {
			pending = append(pending, key)
		}
	}
	if len(pending) == 0 {
		k.mu.Unlock()
		k.opts.Metrics.hit(k.name)
		k.opts.Logger.DebugContext(ctx, "all keys already cached", "store", k.name)
		return nil
	}
	k.seq++
	gen := k.seq
	k.loading++
	k.err = nil
	k.mu.Unlock()

	results := make([]*V, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range pending {
		g.Go(func() error {
			k.opts.Metrics.miss(k.name)
			v, err := k.load(gctx, key)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	err := g.Wait()

	k.mu.Lock()
	defer k.mu.Unlock()
	k.loading--
	if err != nil {
		k.err = err
		return err
	}
	changed := false
	for i, key := range pending {
		if k.applyLocked(key, results[i], gen, now) {
			changed = true
		}
	}
	if changed {
		k.persistLocked(ctx)
	}
	return nil
}

// Set records a value confirmed by a local mutation.
func (k *Keyed[V]) Set(ctx context.Context, key string, v *V) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seq++
	k.applyLocked(key, clone(v), k.seq, k.opts.Now())
	k.err = nil
	k.persistLocked(ctx)
}

// Value returns the cached value for key and whether the key was ever fetched.
func (k *Keyed[V]) Value(key string) (*V, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.fetched[key]
	return clone(k.values[key]), ok
}

// Values returns a copy of all cached values, nil for known negatives.
func (k *Keyed[V]) Values() map[string]*V {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(map[string]*V, len(k.values))
	for key, v := range k.values {
		out[key] = clone(v)
	}
	return out
}

// LastFetched returns the fetch time for key, zero if never fetched.
func (k *Keyed[V]) LastFetched(key string) time.Time {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.lastFetched[key]
}

// Err returns the last recorded error.
func (k *Keyed[V]) Err() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.err
}

// Loading reports whether a fetch is in flight.
func (k *Keyed[V]) Loading() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.loading > 0
}

// Clear drops every entry and deletes the snapshot. Fetches in flight when
// Clear is called are discarded on completion.
func (k *Keyed[V]) Clear(ctx context.Context) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seq++
	k.clearedAt = k.seq
	k.resetLocked()
	k.snap.delete(ctx)
}

func (k *Keyed[V]) load(ctx context.Context, key string) (*V, error) {
	begin := time.Now()
	v, err := k.fetch(ctx, key)
	k.opts.Metrics.observe(k.name, begin)
	if err == nil {
		return v, nil
	}
	k.opts.Metrics.fail(k.name)
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, err
	}
	k.opts.Logger.WarnContext(ctx, "cache fetch failed, caching empty result", "store", k.name, "key", key, "err", err)
	return nil, nil
}

// applyLocked writes v for key unless a newer write or a Clear already landed.
func (k *Keyed[V]) applyLocked(key string, v *V, gen uint64, at time.Time) bool {
	if gen <= k.clearedAt || gen <= k.applied[key] {
		return false
	}
	k.applied[key] = gen
	k.values[key] = v
	k.fetched[key] = struct{}{}
	k.lastFetched[key] = at
	return true
}

func (k *Keyed[V]) freshLocked(key string, now time.Time) bool {
	if _, ok := k.fetched[key]; !ok {
		return false
	}
	ts, ok := k.lastFetched[key]
	return ok && now.Sub(ts) < k.opts.TTL
}

func (k *Keyed[V]) resetLocked() {
	k.values = make(map[string]*V)
	k.fetched = make(map[string]struct{})
	k.lastFetched = make(map[string]time.Time)
	k.applied = make(map[string]uint64)
	k.err = nil
}

func (k *Keyed[V]) persistLocked(ctx context.Context) {
	last := make(map[string]int64, len(k.lastFetched))
	for key, ts := range k.lastFetched {
		last[key] = ts.UnixMilli()
	}
	keys := slices.Sorted(maps.Keys(k.fetched))
	k.snap.save(ctx, keyedSnapshot[V]{
		Values:      k.values,
		FetchedKeys: keys,
		LastFetched: last,
	})
}

func clone[V any](v *V) *V {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
