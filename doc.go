// Package evictive provides small generic in-memory key-value caches with an
// optional least-recently-used eviction policy.
//
// # Overview
//
// Two caches implement the Cache interface:
//
//   - LRU holds at most a fixed number of entries. Put and Get both mark an
//     entry as most recently used, and a Put on a full cache evicts the least
//     recently used entry.
//   - Unbounded never evicts. Put replaces any entry stored under the same
//     key; Get does not change the order of entries.
//
// # Basic Usage
//
//	cache, err := evictive.NewLRU[string, string](
//		evictive.WithCapacity[string, string](128),
//	)
//	if err != nil {
//		return err
//	}
//
//	cache.Put("greeting", "Hello")
//
//	if v, ok := cache.Get("greeting"); ok {
//		fmt.Println(v)
//	}
//
//	cache.Remove("greeting")
//
// The capacity defaults to DefaultCapacity. A capacity below one is rejected
// by NewLRU with an error matching ErrInvalidCapacity.
//
// Callers that pick the policy at runtime can use New:
//
//	cache, err := evictive.New[string, int](evictive.Replace)
//
// # Eviction
//
// Eviction happens synchronously inside Put and removes exactly one entry,
// the head of the queue. Register a callback to observe it:
//
//	cache, _ := evictive.NewLRU[string, int](
//		evictive.OnEvict(func(key string, value int) {
//			log.Printf("evicted %s", key)
//		}),
//	)
//
// A Put of a key that is already present in a full LRU cache still evicts
// the least recently used entry before replacing the existing one.
//
// # Testing
//
// Entries live in a Queue. Inject one with WithQueue to seed state or to
// record how the cache uses it, and seed entries with WithEntries:
//
//	cache, _ := evictive.NewLRU[string, string](
//		evictive.WithCapacity[string, string](2),
//		evictive.WithEntries(
//			evictive.NewEntry("1", "Hello"),
//			evictive.NewEntry("2", "World"),
//		),
//	)
//
// # Thread Safety
//
// Caches are not safe for concurrent use. Confine a cache to one goroutine or
// guard it with a lock of your own.
package evictive
