// Package store holds the client-side mirror of a backend collection: the
// last known server state, patched in place after each successful mutation
// instead of refetching the whole list.
package store

import "sync"

// Mirror is an ordered, id-keyed collection of one resource type. Insertion
// order is preserved; Upsert of a known id replaces the record without moving
// it. All operations are total: none may fail or panic.
type Mirror[T any] struct {
	mu    sync.RWMutex
	keyOf func(T) int64
	order []int64
	byID  map[int64]T
}

// NewMirror creates an empty mirror. keyOf extracts a record's identifying field.
func NewMirror[T any](keyOf func(T) int64) *Mirror[T] {
	return &Mirror[T]{
		keyOf: keyOf,
		byID:  make(map[int64]T),
	}
}

// ReplaceAll discards the mirror's contents and adopts the given records in
// the given order. Used after the initial load.
func (m *Mirror[T]) ReplaceAll(records []T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = make([]int64, 0, len(records))
	m.byID = make(map[int64]T, len(records))
	for _, rec := range records {
		id := m.keyOf(rec)
		if _, seen := m.byID[id]; !seen {
			m.order = append(m.order, id)
		}
		m.byID[id] = rec
	}
}

// Upsert inserts a record at the tail if its id is unseen, otherwise replaces
// the stored record in place, preserving its position.
func (m *Mirror[T]) Upsert(rec T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.keyOf(rec)
	if _, seen := m.byID[id]; !seen {
		m.order = append(m.order, id)
	}
	m.byID[id] = rec
}

// Remove deletes the record with the given id. Removing an absent id is a no-op.
func (m *Mirror[T]) Remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.byID[id]; !seen {
		return
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Get returns the record with the given id.
func (m *Mirror[T]) Get(id int64) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	return rec, ok
}

// All returns a snapshot of the mirror's records in order.
func (m *Mirror[T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// Len returns the number of records held.
func (m *Mirror[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
