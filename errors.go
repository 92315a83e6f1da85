package evictive

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidCapacity is returned when a bounded cache is configured
	// with a capacity below one.
	ErrInvalidCapacity = errors.New("evictive: capacity must be at least 1")

	// ErrOverCapacity is returned when a bounded cache is seeded with more
	// entries than it may hold.
	ErrOverCapacity = errors.New("evictive: initial entries exceed capacity")

	// ErrUnknownPolicy is returned by New for a Policy it does not know.
	ErrUnknownPolicy = errors.New("evictive: unknown policy")
)
