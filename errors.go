package ptable

import "errors"

var (
	// ErrTableFull is returned when a probe visits every bucket without
	// finding the key, an empty bucket or a tombstone to reuse.
	ErrTableFull = errors.New("ptable: table full")

	// ErrCapacityOverflow is returned when growing the table would exceed
	// the maximum addressable bucket count.
	ErrCapacityOverflow = errors.New("ptable: capacity overflow")

	// ErrInvalidCapacity is returned by New for a non-positive capacity.
	ErrInvalidCapacity = errors.New("ptable: capacity must be positive")

	// ErrInvalidLoadFactor is returned by New for a max load factor
	// outside (0, 1).
	ErrInvalidLoadFactor = errors.New("ptable: max load factor must be in (0, 1)")

	// ErrInvalidGrowthFactor is returned by New for a growth factor below 2.
	ErrInvalidGrowthFactor = errors.New("ptable: growth factor must be at least 2")
)
