package evictive

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// LRU is a bounded cache that evicts the least recently used entry.
//
// Both Put and Get make an entry the most recently used one. When Put is
// called on a full cache, the least recently used entry is evicted before
// the new one is stored.
//
// LRU is not safe for concurrent use; callers must serialize access.
type LRU[K comparable, V any] struct {
	queue    Queue[K, V]
	capacity int
	logger   *zap.Logger
	onEvict  func(K, V)
}

// NewLRU creates a bounded LRU cache. The capacity defaults to
// DefaultCapacity.
func NewLRU[K comparable, V any](opts ...Option[K, V]) (*LRU[K, V], error) {
	cfg := newConfig(opts)
	if cfg.capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", cfg.capacity)
	}

	q := cfg.baseQueue()
	if n := cfg.seededLen(q); n > cfg.capacity {
		return nil, errors.Wrapf(ErrOverCapacity, "%d entries for capacity %d", n, cfg.capacity)
	}
	cfg.seed(q)

	logger := cfg.logger.Named("evictive")
	logger.Debug("created cache",
		zap.Stringer("policy", LeastRecentlyUsed),
		zap.Int("capacity", cfg.capacity),
		zap.Int("len", q.Len()),
	)

	return &LRU[K, V]{
		queue:    q,
		capacity: cfg.capacity,
		logger:   logger,
		onEvict:  cfg.onEvict,
	}, nil
}

// Put stores value under key as the most recently used entry.
//
// If the cache is full, the least recently used entry is evicted first.
// This happens even when key is already present: overwriting a key in a
// full cache evicts the head entry, which may belong to a different key,
// and the cache ends up one entry short of its capacity.
func (c *LRU[K, V]) Put(key K, value V) bool {
	mustKey(key)

	if c.queue.Len() >= c.capacity {
		c.evict()
	}
	c.queue.Remove(key)
	c.queue.Offer(NewEntry(key, value))
	return true
}

func (c *LRU[K, V]) evict() {
	e, ok := c.queue.Poll()
	if !ok {
		return
	}
	c.logger.Debug("evicted entry",
		zap.Any("key", e.key),
		zap.Int("capacity", c.capacity),
	)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

// Get returns the value stored under key and makes it the most recently
// used entry. A miss leaves the cache unchanged.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	mustKey(key)

	e, ok := c.queue.Remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.queue.Offer(e)
	return e.value, true
}

// Remove deletes the entry stored under key without touching the order of
// the remaining entries.
func (c *LRU[K, V]) Remove(key K) bool {
	mustKey(key)

	_, ok := c.queue.Remove(key)
	return ok
}

// Contains reports whether key is present without updating its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	mustKey(key)

	_, ok := c.queue.Find(key)
	return ok
}

// Len returns the number of stored entries. It never exceeds Cap.
func (c *LRU[K, V]) Len() int {
	return c.queue.Len()
}

// Cap returns the maximum number of entries.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the stored keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	return lo.Map(c.queue.Entries(), func(e Entry[K, V], _ int) K {
		return e.key
	})
}

// Clear removes every entry. Eviction callbacks are not invoked.
func (c *LRU[K, V]) Clear() {
	c.queue.Clear()
}
