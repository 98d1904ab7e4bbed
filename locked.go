package ptable

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Locked guards a Table with a single exclusive mutex. The lock is held
// for the whole of each call, including any rehash triggered by Put.
type Locked[K constraints.Signed, V any] struct {
	mu sync.Mutex
	t  *Table[K, V]
}

// NewLocked creates a mutex-guarded table with the given options.
func NewLocked[K constraints.Signed, V any](opts ...Option) (*Locked[K, V], error) {
	t, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{t: t}, nil
}

// Put inserts or overwrites the value for key, growing the table if needed.
func (l *Locked[K, V]) Put(key K, value V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Put(key, value)
}

// Get returns the value stored for key, or def if key is absent.
func (l *Locked[K, V]) Get(key K, def V) V {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Get(key, def)
}

// Lookup returns the value stored for key and whether it was present.
func (l *Locked[K, V]) Lookup(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Lookup(key)
}

// Has reports whether key is present.
func (l *Locked[K, V]) Has(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Has(key)
}

// Delete removes key and reports whether it was present.
func (l *Locked[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Delete(key)
}

// Size returns the number of live entries.
func (l *Locked[K, V]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Size()
}

// Stats returns the current occupancy counters.
func (l *Locked[K, V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Stats()
}

// Range holds the lock while iterating; fn must not call back into l.
func (l *Locked[K, V]) Range(fn func(key K, value V) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Range(fn)
}

// Clear removes every entry and tombstone, keeping the capacity.
func (l *Locked[K, V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Clear()
}
