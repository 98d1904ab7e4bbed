package ptable

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// maxAlloc is a conservative bound on the bytes a single bucket slice may
// occupy; the runtime rejects larger slices with a panic.
var maxAlloc = func() int {
	if strconv.IntSize == 32 {
		return math.MaxInt32
	}
	return 1 << 47
}()

type status uint8

const (
	empty status = iota
	occupied
	deleted
)

// bucket is a single slot. key and val are only meaningful when the
// status is not empty.
type bucket[K constraints.Signed, V any] struct {
	status status
	key    K
	val    V
}

// Table is an open-addressing hash table with linear probing and
// tombstone deletion. Keys are used directly as their own hash.
//
// A Table is not safe for concurrent use; see Locked.
type Table[K constraints.Signed, V any] struct {
	buckets []bucket[K, V]
	used    int // buckets with status occupied
	deleted int // buckets with status deleted

	maxLoadFactor float64
	growthFactor  int
	log           *slog.Logger
}

// New creates an empty table. Without options it has DefaultCapacity
// buckets, rehashes above DefaultMaxLoadFactor and grows by
// DefaultGrowthFactor.
func New[K constraints.Signed, V any](opts ...Option) (*Table[K, V], error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Table[K, V]{
		buckets:       make([]bucket[K, V], c.capacity),
		maxLoadFactor: c.maxLoadFactor,
		growthFactor:  c.growthFactor,
		log:           c.logger,
	}, nil
}

// home returns key mod capacity, floored so negative keys land in range.
func (t *Table[K, V]) home(key K) int {
	n := int64(len(t.buckets))
	h := int64(key) % n
	if h < 0 {
		h += n
	}
	return int(h)
}

// locate returns the bucket holding key, or the first empty bucket on its
// probe sequence. Tombstones are skipped; the first one seen is returned
// only if the probe wraps around without an empty bucket or a match.
func (t *Table[K, V]) locate(key K) (int, error) {
	n := len(t.buckets)
	start := t.home(key)
	tomb := -1
	for off := 0; off < n; off++ {
		i := (start + off) % n
		b := &t.buckets[i]
		switch b.status {
		case empty:
			return i, nil
		case occupied:
			if b.key == key {
				return i, nil
			}
		case deleted:
			if tomb < 0 {
				tomb = i
			}
		}
	}
	if tomb >= 0 {
		return tomb, nil
	}
	return -1, ErrTableFull
}

// write stores key and value at bucket i, which locate returned.
func (t *Table[K, V]) write(i int, key K, value V) {
	b := &t.buckets[i]
	switch b.status {
	case empty:
		t.used++
	case deleted:
		// The tombstone is consumed by the new entry.
		t.used++
		t.deleted--
	}
	b.status = occupied
	b.key = key
	b.val = value
}

func (t *Table[K, V]) overloaded() bool {
	return float64(t.used+t.deleted)/float64(len(t.buckets)) > t.maxLoadFactor
}

// Put inserts or overwrites the value for key. It may rehash the whole
// table inline, so a single call can cost O(capacity).
//
// Put returns ErrTableFull only if the key could not be stored.
func (t *Table[K, V]) Put(key K, value V) error {
	if t.used+t.deleted >= len(t.buckets) {
		// No empty bucket left. Growing first keeps probe sequences
		// terminating at an empty bucket.
		if err := t.rehash(); err != nil {
			t.log.Warn("ptable: grow before put failed", "capacity", len(t.buckets), "err", err)
		}
	}

	i, err := t.locate(key)
	if err != nil {
		return fmt.Errorf("put %d: %w", int64(key), err)
	}
	t.write(i, key, value)

	if t.overloaded() {
		if err := t.rehash(); err != nil {
			// The entry is stored; the table just stays denser.
			t.log.Warn("ptable: grow after put failed", "capacity", len(t.buckets), "err", err)
		}
	}
	return nil
}

// Lookup returns the value stored for key and whether it was present.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	i, err := t.locate(key)
	if err != nil || t.buckets[i].status != occupied {
		var zero V
		return zero, false
	}
	return t.buckets[i].val, true
}

// Get returns the value stored for key, or def if key is absent.
func (t *Table[K, V]) Get(key K, def V) V {
	if v, ok := t.Lookup(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Delete removes key, leaving a tombstone in its bucket. It reports
// whether the key was present. Deleting an absent key does nothing.
func (t *Table[K, V]) Delete(key K) bool {
	i, err := t.locate(key)
	if err != nil || t.buckets[i].status != occupied {
		return false
	}
	var zero V
	t.buckets[i].status = deleted
	t.buckets[i].val = zero
	t.used--
	t.deleted++
	return true
}

// Size returns the number of live entries.
func (t *Table[K, V]) Size() int { return t.used }

// Capacity returns the current bucket count.
func (t *Table[K, V]) Capacity() int { return len(t.buckets) }

// Tombstones returns the number of deleted buckets awaiting a rehash.
func (t *Table[K, V]) Tombstones() int { return t.deleted }

// LoadFactor returns (occupied+deleted)/capacity.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.used+t.deleted) / float64(len(t.buckets))
}

// Range calls fn for every live entry until fn returns false. Entries are
// visited in bucket order, which callers must not depend on. fn must not
// modify the table.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.buckets {
		b := &t.buckets[i]
		if b.status != occupied {
			continue
		}
		if !fn(b.key, b.val) {
			return
		}
	}
}

// Clear removes every entry and tombstone. The capacity is kept.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.used = 0
	t.deleted = 0
}

// rehash moves every live entry into a table GrowthFactor times larger,
// dropping tombstones, then replaces the buckets and counters wholesale.
func (t *Table[K, V]) rehash() error {
	n := len(t.buckets)
	limit := maxAlloc / int(unsafe.Sizeof(bucket[K, V]{}))
	if n > limit/t.growthFactor {
		return fmt.Errorf("%w: %d buckets * %d", ErrCapacityOverflow, n, t.growthFactor)
	}
	size := n * t.growthFactor

	t.log.Debug("ptable: rehash start",
		"old_capacity", n,
		"new_capacity", size,
		"size", t.used,
		"tombstones", t.deleted)

	next := &Table[K, V]{
		buckets:       make([]bucket[K, V], size),
		maxLoadFactor: t.maxLoadFactor,
		growthFactor:  t.growthFactor,
		log:           t.log,
	}
	for i := range t.buckets {
		b := &t.buckets[i]
		if b.status != occupied {
			continue
		}
		j, err := next.locate(b.key)
		if err != nil {
			return fmt.Errorf("rehash %d: %w", int64(b.key), err)
		}
		next.write(j, b.key, b.val)
	}

	t.log.Debug("ptable: rehash done",
		"old_capacity", n,
		"new_capacity", len(next.buckets),
		"size", next.used,
		"tombstones_dropped", t.deleted)

	t.buckets = next.buckets
	t.used = next.used
	t.deleted = next.deleted
	return nil
}
