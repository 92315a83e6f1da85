package evictive

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the default maximum number of entries of a bounded cache.
	DefaultCapacity = 32
)

type config[K comparable, V any] struct {
	capacity int
	queue    Queue[K, V]
	entries  []Entry[K, V]
	logger   *zap.Logger
	onEvict  func(K, V)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		capacity: DefaultCapacity,
		logger:   zap.NewNop(),
	}
}

func newConfig[K comparable, V any](opts []Option[K, V]) config[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// baseQueue returns the configured queue, or a fresh one.
func (c *config[K, V]) baseQueue() Queue[K, V] {
	if c.queue == nil {
		return NewQueue[K, V]()
	}
	return c.queue
}

// seededLen reports how many entries q would hold once seeded, without
// touching q.
func (c *config[K, V]) seededLen(q Queue[K, V]) int {
	keys := lo.Uniq(lo.Map(c.entries, func(e Entry[K, V], _ int) K {
		return e.key
	}))
	return q.Len() + lo.CountBy(keys, func(k K) bool {
		_, ok := q.Find(k)
		return !ok
	})
}

// seed offers the initial entries to q in order.
func (c *config[K, V]) seed(q Queue[K, V]) {
	lo.ForEach(c.entries, func(e Entry[K, V], _ int) {
		q.Offer(e)
	})
}

// buildQueue returns the base queue with the initial entries offered.
func (c *config[K, V]) buildQueue() Queue[K, V] {
	q := c.baseQueue()
	c.seed(q)
	return q
}

// Option configures a cache.
type Option[K comparable, V any] func(*config[K, V])

// WithCapacity sets the maximum number of entries of a bounded cache.
// A value below one makes construction fail with ErrInvalidCapacity.
// Unbounded caches ignore it.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		c.capacity = n
	}
}

// WithQueue sets the queue backing the cache. The cache takes ownership of
// q together with any entries it already holds. A nil q is ignored.
// If construction fails, q is left as it was.
func WithQueue[K comparable, V any](q Queue[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		if q != nil {
			c.queue = q
		}
	}
}

// WithEntries seeds the cache with entries, oldest first.
// Later entries replace earlier ones sharing a key.
func WithEntries[K comparable, V any](entries ...Entry[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.entries = append(c.entries, entries...)
	}
}

// WithLogger sets the logger used to report construction and evictions.
// Defaults to a no-op logger. A nil logger is ignored.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnEvict sets a callback invoked when a bounded cache evicts an entry to
// make room. It is not called for Remove or Clear, nor when an overwrite
// replaces a value, except that overwriting the least recently used key of a
// full cache reports its old value as evicted.
func OnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}
