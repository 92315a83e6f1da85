package evictive

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Cache stores values under keys.
// How entries are ordered and whether they are ever evicted depends on the
// implementation.
type Cache[K comparable, V any] interface {
	// Put stores value under key, replacing any value already stored there.
	// It always returns true.
	Put(key K, value V) bool

	// Get returns the value stored under key and whether one was found.
	Get(key K) (V, bool)

	// Remove deletes the entry stored under key.
	// Returns true if an entry was found and deleted.
	Remove(key K) bool

	// Len returns the number of stored entries.
	Len() int
}

// Compile-time interface assertions.
var (
	_ Cache[string, int] = (*LRU[string, int])(nil)
	_ Cache[string, int] = (*Unbounded[string, int])(nil)
)

// Policy selects a Cache implementation.
type Policy int

const (
	// LeastRecentlyUsed bounds the cache and evicts the least recently
	// used entry. See LRU.
	LeastRecentlyUsed Policy = iota
	// Replace never evicts and only replaces entries on overwrite.
	// See Unbounded.
	Replace
)

func (p Policy) String() string {
	switch p {
	case LeastRecentlyUsed:
		return "lru"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// New returns a Cache implementing the given policy.
func New[K comparable, V any](p Policy, opts ...Option[K, V]) (Cache[K, V], error) {
	switch p {
	case LeastRecentlyUsed:
		c, err := NewLRU(opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Replace:
		return NewUnbounded(opts...), nil
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "policy %d", int(p))
	}
}

// mustKey panics if key is a nil pointer, channel, or interface.
// Such a key can only come from a caller bug.
func mustKey[K comparable](key K) {
	if lo.IsNil(key) {
		panic(errors.AssertionFailedf("evictive: nil key of type %T", key))
	}
}
