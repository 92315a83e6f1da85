package evictive

import "container/list"

// Queue is the ordered sequence of entries backing a cache.
// The head holds the oldest entry and the tail the newest.
//
// Caches only talk to their queue through this interface, so a custom
// implementation can be injected with WithQueue, for example to seed state
// or to observe how a cache manipulates its storage.
type Queue[K comparable, V any] interface {
	// Offer appends e at the tail. Any entry already held for e's key is
	// dropped first, so a queue never holds two entries for one key.
	Offer(e Entry[K, V])

	// Poll removes and returns the head entry.
	// Returns false if the queue is empty.
	Poll() (Entry[K, V], bool)

	// Find returns the first entry from the head whose key equals key,
	// without changing the queue.
	Find(key K) (Entry[K, V], bool)

	// Remove deletes the first entry from the head whose key equals key
	// and returns it.
	Remove(key K) (Entry[K, V], bool)

	// Len returns the number of entries held.
	Len() int

	// Entries returns a copy of the held entries, head to tail.
	Entries() []Entry[K, V]

	// Clear drops every entry.
	Clear()
}

var _ Queue[string, int] = (*linkedQueue[string, int])(nil)

// linkedQueue keeps order in a doubly-linked list and indexes it by key,
// so every operation runs in constant time.
type linkedQueue[K comparable, V any] struct {
	order *list.List
	items map[K]*list.Element
}

// NewQueue returns the default Queue seeded with entries, oldest first.
func NewQueue[K comparable, V any](entries ...Entry[K, V]) Queue[K, V] {
	q := &linkedQueue[K, V]{
		order: list.New(),
		items: make(map[K]*list.Element, len(entries)),
	}
	for _, e := range entries {
		q.Offer(e)
	}
	return q
}

func (q *linkedQueue[K, V]) Offer(e Entry[K, V]) {
	q.Remove(e.key)
	q.items[e.key] = q.order.PushBack(e)
}

func (q *linkedQueue[K, V]) Poll() (Entry[K, V], bool) {
	elem := q.order.Front()
	if elem == nil {
		return Entry[K, V]{}, false
	}
	return q.unlink(elem), true
}

func (q *linkedQueue[K, V]) Find(key K) (Entry[K, V], bool) {
	elem, ok := q.items[key]
	if !ok {
		return Entry[K, V]{}, false
	}
	return elem.Value.(Entry[K, V]), true
}

func (q *linkedQueue[K, V]) Remove(key K) (Entry[K, V], bool) {
	elem, ok := q.items[key]
	if !ok {
		return Entry[K, V]{}, false
	}
	return q.unlink(elem), true
}

func (q *linkedQueue[K, V]) Len() int {
	return q.order.Len()
}

func (q *linkedQueue[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, q.order.Len())
	for elem := q.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(Entry[K, V]))
	}
	return out
}

func (q *linkedQueue[K, V]) Clear() {
	q.order.Init()
	clear(q.items)
}

func (q *linkedQueue[K, V]) unlink(elem *list.Element) Entry[K, V] {
	e := q.order.Remove(elem).(Entry[K, V])
	delete(q.items, e.key)
	return e
}
