package evictive

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Unbounded is a cache without a capacity limit. It never evicts entries.
// Put replaces the entry stored under a key and moves it to the tail;
// Get leaves the order untouched.
//
// Unbounded is not safe for concurrent use; callers must serialize access.
type Unbounded[K comparable, V any] struct {
	queue Queue[K, V]
}

// NewUnbounded creates an unbounded cache.
// WithCapacity and OnEvict have no effect on it.
func NewUnbounded[K comparable, V any](opts ...Option[K, V]) *Unbounded[K, V] {
	cfg := newConfig(opts)
	q := cfg.buildQueue()

	cfg.logger.Named("evictive").Debug("created cache",
		zap.Stringer("policy", Replace),
		zap.Int("len", q.Len()),
	)

	return &Unbounded[K, V]{queue: q}
}

// Put stores value under key, dropping any entry already stored there.
func (c *Unbounded[K, V]) Put(key K, value V) bool {
	mustKey(key)

	c.queue.Remove(key)
	c.queue.Offer(NewEntry(key, value))
	return true
}

// Get returns the value stored under key.
func (c *Unbounded[K, V]) Get(key K) (V, bool) {
	mustKey(key)

	e, ok := c.queue.Find(key)
	return e.value, ok
}

// Remove deletes the entry stored under key.
func (c *Unbounded[K, V]) Remove(key K) bool {
	mustKey(key)

	_, ok := c.queue.Remove(key)
	return ok
}

// Contains reports whether key is present.
func (c *Unbounded[K, V]) Contains(key K) bool {
	mustKey(key)

	_, ok := c.queue.Find(key)
	return ok
}

// Len returns the number of stored entries.
func (c *Unbounded[K, V]) Len() int {
	return c.queue.Len()
}

// Keys returns the stored keys in the order they were last put.
func (c *Unbounded[K, V]) Keys() []K {
	return lo.Map(c.queue.Entries(), func(e Entry[K, V], _ int) K {
		return e.key
	})
}

// Clear removes every entry.
func (c *Unbounded[K, V]) Clear() {
	c.queue.Clear()
}
