package slot

// Stats is a point-in-time snapshot of a pool's occupancy.
type Stats struct {
	// Capacity is the number of reserved slots, occupied or free.
	Capacity int
	// Live is the number of occupied slots.
	Live int
	// Free is the number of reserved slots waiting for reuse.
	Free int
	// Segments is the number of backing segments; always 1 for the
	// Array backing.
	Segments int
}

// CollectStats returns the pool's current occupancy counters.
func (p *Pool[T]) CollectStats() Stats {
	return Stats{
		Capacity: p.store.size(),
		Live:     p.live,
		Free:     p.free.len(),
		Segments: p.store.segments(),
	}
}
