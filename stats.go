package ptable

// Stats is a point-in-time snapshot of a table's occupancy.
type Stats struct {
	Size       int
	Tombstones int
	Capacity   int
	LoadFactor float64
}

// Stats returns the current occupancy counters.
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Size:       t.used,
		Tombstones: t.deleted,
		Capacity:   len(t.buckets),
		LoadFactor: t.LoadFactor(),
	}
}
