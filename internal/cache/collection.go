package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Source is the remote side of a Collection.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
}

// collectionSnapshot is the persisted shape of a Collection.
type collectionSnapshot[T any] struct {
	Items       []T    `json:"items"`
	LastFetched *int64 `json:"lastFetched"`
}

// Collection caches a whole remote collection with a time-to-live.
// It is safe for concurrent use; remote calls run outside the lock.
type Collection[T any] struct {
	name string
	src  Source[T]
	id   func(T) string
	opts Options
	snap snapshotter

	mu          sync.Mutex
	items       []T
	lastFetched time.Time
	err         error
	loading     int
	started     uint64
	applied     uint64
	clearedAt   uint64
}

// NewCollection returns an empty Collection named name. id extracts the item identifier.
func NewCollection[T any](name string, src Source[T], id func(T) string, opts Options) *Collection[T] {
	opts = opts.withDefaults()
	return &Collection[T]{
		name: name,
		src:  src,
		id:   id,
		opts: opts,
		snap: snapshotter{store: opts.Store, namespace: name, key: opts.Key, logger: opts.Logger},
	}
}

// Restore loads the persisted snapshot, if any, into an untouched collection.
func (c *Collection[T]) Restore(ctx context.Context) error {
	var s collectionSnapshot[T]
	ok, err := c.snap.load(ctx, &s)
	if err != nil || !ok {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.applied > 0 {
		return nil
	}
	c.items = s.Items
	c.lastFetched = fromMillis(s.LastFetched)
	return nil
}

// Fetch reads the collection. Unless force is set, a non-empty collection
// fetched less than TTL ago is served as is without a remote call. A failed
// fetch keeps the previous items, records the error and returns it.
func (c *Collection[T]) Fetch(ctx context.Context, force bool) error {
	now := c.opts.Now()

	c.mu.Lock()
	if !force && c.freshLocked(now) {
		c.mu.Unlock()
		c.opts.Metrics.hit(c.name)
		c.opts.Logger.DebugContext(ctx, "using cached data", "store", c.name)
		return nil
	}
	c.started++
	gen := c.started
	c.loading++
	c.err = nil
	c.mu.Unlock()
	c.opts.Metrics.miss(c.name)

	begin := time.Now()
	items, err := c.src.List(ctx)
	c.opts.Metrics.observe(c.name, begin)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if err != nil {
		c.opts.Metrics.fail(c.name)
		if gen > c.applied {
			c.err = err
		}
		return err
	}
	if gen <= c.applied {
		return nil
	}
	c.applied = gen
	if items == nil {
		items = []T{}
	}
	c.items = slices.Clone(items)
	c.lastFetched = now
	c.persistLocked(ctx)
	return nil
}

// Refresh always performs a remote fetch.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	return c.Fetch(ctx, true)
}

// GetByID returns the cached item with the given id without a remote call.
// Otherwise it fetches the single item and appends it when it is still absent;
// existing entries are never replaced. A result that completes after a Clear
// is returned but not cached.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	if item, ok := c.findLocked(id); ok {
		c.mu.Unlock()
		c.opts.Metrics.hit(c.name)
		return item, nil
	}
	gen := c.started
	c.mu.Unlock()
	c.opts.Metrics.miss(c.name)

	begin := time.Now()
	item, err := c.src.Get(ctx, id)
	c.opts.Metrics.observe(c.name, begin)

	c.mu.Lock()
	defer c.mu.Unlock()
	cleared := c.clearedAt > gen
	if err != nil {
		c.opts.Metrics.fail(c.name)
		if !cleared {
			c.err = err
		}
		var zero T
		return zero, err
	}
	if cleared {
		return item, nil
	}
	if _, ok := c.findLocked(id); !ok {
		c.items = append(c.items, item)
		c.persistLocked(ctx)
	}
	return item, nil
}

// Add appends a server-confirmed item and treats the collection as freshly read.
func (c *Collection[T]) Add(ctx context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	c.applied = c.started
	c.items = append(c.items, item)
	c.lastFetched = c.opts.Now()
	c.err = nil
	c.persistLocked(ctx)
}

// Replace swaps the cached item that has the same id, appending it when absent.
// Fetches in flight when Replace is called are discarded on completion.
func (c *Collection[T]) Replace(ctx context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	c.applied = c.started
	id := c.id(item)
	i := slices.IndexFunc(c.items, func(it T) bool { return c.id(it) == id })
	if i < 0 {
		c.items = append(c.items, item)
	} else {
		c.items[i] = item
	}
	c.err = nil
	c.persistLocked(ctx)
}

// Fail records err as the visible error without touching the items.
func (c *Collection[T]) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Clear drops items, error and fetch time and deletes the snapshot. Fetches
// in flight when Clear is called are discarded on completion.
func (c *Collection[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	c.applied = c.started
	c.clearedAt = c.started
	c.items = nil
	c.err = nil
	c.lastFetched = time.Time{}
	c.snap.delete(ctx)
}

// Items returns a copy of the cached items.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Err returns the last recorded error.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// LastFetched returns the time of the last applied fetch, zero if none.
func (c *Collection[T]) LastFetched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetched
}

// Loading reports whether a fetch is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

func (c *Collection[T]) freshLocked(now time.Time) bool {
	return !c.lastFetched.IsZero() && len(c.items) > 0 && now.Sub(c.lastFetched) < c.opts.TTL
}

func (c *Collection[T]) findLocked(id string) (T, bool) {
	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) persistLocked(ctx context.Context) {
	c.snap.save(ctx, collectionSnapshot[T]{
		Items:       c.items,
		LastFetched: toMillis(c.lastFetched),
	})
}
