package evictive

import (
	"github.com/stretchr/testify/mock"
)

// spyQueue records calls to the mutating Queue methods and forwards them to
// a real queue.
type spyQueue[K comparable, V any] struct {
	mock.Mock
	Queue[K, V]
}

func newSpyQueue[K comparable, V any](entries ...Entry[K, V]) *spyQueue[K, V] {
	s := &spyQueue[K, V]{Queue: NewQueue(entries...)}
	s.On("Offer", mock.Anything).Return().Maybe()
	s.On("Poll").Return().Maybe()
	s.On("Remove", mock.Anything).Return().Maybe()
	s.On("Find", mock.Anything).Return().Maybe()
	return s
}

func (s *spyQueue[K, V]) Offer(e Entry[K, V]) {
	s.Called(e)
	s.Queue.Offer(e)
}

func (s *spyQueue[K, V]) Poll() (Entry[K, V], bool) {
	s.Called()
	return s.Queue.Poll()
}

func (s *spyQueue[K, V]) Find(key K) (Entry[K, V], bool) {
	s.Called(key)
	return s.Queue.Find(key)
}

func (s *spyQueue[K, V]) Remove(key K) (Entry[K, V], bool) {
	s.Called(key)
	return s.Queue.Remove(key)
}

// model is a slice-backed rendition of the LRU cache used to check the real
// one against random operation sequences.
type model struct {
	capacity int
	entries  []Entry[int, int]
}

func (m *model) index(key int) int {
	for i, e := range m.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

func (m *model) take(key int) (Entry[int, int], bool) {
	i := m.index(key)
	if i < 0 {
		return Entry[int, int]{}, false
	}
	e := m.entries[i]
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return e, true
}

func (m *model) put(key, value int) {
	if len(m.entries) >= m.capacity {
		m.entries = m.entries[1:]
	}
	m.take(key)
	m.entries = append(m.entries, NewEntry(key, value))
}

func (m *model) get(key int) (int, bool) {
	e, ok := m.take(key)
	if !ok {
		return 0, false
	}
	m.entries = append(m.entries, e)
	return e.value, true
}

func (m *model) remove(key int) bool {
	_, ok := m.take(key)
	return ok
}

func (m *model) keys() []int {
	out := make([]int, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.key)
	}
	return out
}
