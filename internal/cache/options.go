// Package cache implements read-through, time-boxed caches over remote reads.
//
// A Collection holds a whole remote collection; a Keyed cache holds one value
// per key and remembers negative results. Both persist a narrow snapshot of
// their state (values and fetch timestamps, never loading or error flags)
// after every mutating operation, and both discard the result of a fetch when
// a fetch started later, a local write or a Clear has already been applied.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rsvpportal/internal/domain"
)

// DefaultTTL is how long a fetched value is considered fresh.
const DefaultTTL = 5 * time.Minute

// Options configures a cache. Zero values fall back to defaults.
type Options struct {
	TTL     time.Duration
	Now     func() time.Time
	Logger  *slog.Logger
	Metrics *Metrics

	// Store and Key locate the persisted snapshot. A nil Store disables persistence.
	Store domain.SnapshotStore
	Key   string
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// snapshotter reads and writes one namespaced snapshot.
type snapshotter struct {
	store     domain.SnapshotStore
	namespace string
	key       string
	logger    *slog.Logger
}

func (s snapshotter) enabled() bool {
	return s.store != nil && s.key != ""
}

// save is best-effort: the cache is a disposable replica, so failures are only logged.
func (s snapshotter) save(ctx context.Context, v any) {
	if !s.enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.WarnContext(ctx, "cache snapshot encode failed", "namespace", s.namespace, "err", err)
		return
	}
	if err := s.store.Save(context.WithoutCancel(ctx), s.namespace, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "cache snapshot save failed", "namespace", s.namespace, "err", err)
	}
}

func (s snapshotter) load(ctx context.Context, v any) (bool, error) {
	if !s.enabled() {
		return false, nil
	}
	data, err := s.store.Load(ctx, s.namespace, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s snapshot: %w", s.namespace, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s snapshot: %w", s.namespace, err)
	}
	return true, nil
}

func (s snapshotter) delete(ctx context.Context) {
	if !s.enabled() {
		return
	}
	if err := s.store.Delete(context.WithoutCancel(ctx), s.namespace, s.key); err != nil {
		s.logger.WarnContext(ctx, "cache snapshot delete failed", "namespace", s.namespace, "err", err)
	}
}

func toMillis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromMillis(ms *int64) time.Time {
	if ms == nil {
		return time.Time{}
	}
	return time.UnixMilli(*ms)
}
