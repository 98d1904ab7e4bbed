/*
Package ptable provides an in-memory open-addressing hash table keyed by
signed integers.

Basic usage:

	import "github.com/theflywheel/ptable"

	t, err := ptable.New[int64, float64]() // 8 buckets
	if err != nil {
		log.Fatal(err)
	}

	if err := t.Put(5, 1.5); err != nil {
		log.Fatal(err)
	}
	t.Put(13, 2.5) // 13 shares the home bucket of 5

	fmt.Println(t.Get(5, 0), t.Has(13), t.Size())
	t.Delete(5)

Features:

  - Any fixed-width signed integer key type and any value type
  - Keys are their own hash: the home bucket is key mod capacity, floored
    so negative keys are valid
  - Linear probing with unit stride
  - Deletion leaves a tombstone so probes for other keys continue past it
  - Inline rehash once (occupied+deleted)/capacity exceeds 0.7; the new
    table is four times larger and tombstones are dropped
  - Capacity never shrinks
  - Absent keys are never an error for Get, Has or Delete

Implementation Details:

Every operation goes through one probe routine. It returns the bucket that
holds the key or the first empty bucket on the key's probe sequence, and it
never visits more than capacity buckets. If a probe wraps around, the first
tombstone seen is reused for insertion; if there is none the table reports
ErrTableFull instead of looping. Put also grows the table before probing
whenever no empty bucket is left.

A Table is not safe for concurrent use. Locked wraps one behind a single
mutex held for each whole operation, rehash included.
*/
package ptable
