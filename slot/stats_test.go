package slot

import "testing"

func TestPoolStats(t *testing.T) {
	pool := NewPool[int](Segmented, 4)

	stats := pool.CollectStats()
	if stats.Capacity != 0 || stats.Live != 0 || stats.Free != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	indices := make([]int, 0, 13)
	for i := 0; i < 13; i++ {
		indices = append(indices, pool.Allocate(i))
	}
	pool.Release(indices[1])
	pool.Release(indices[8])

	stats = pool.CollectStats()
	if stats.Capacity != 13 {
		t.Errorf("expected capacity 13, got %d", stats.Capacity)
	}
	if stats.Live != 11 {
		t.Errorf("expected 11 live, got %d", stats.Live)
	}
	if stats.Free != 2 {
		t.Errorf("expected 2 free, got %d", stats.Free)
	}
	// 13 slots over an initial capacity of 4 spans segments 4+8+16.
	if stats.Segments != 3 {
		t.Errorf("expected 3 segments, got %d", stats.Segments)
	}

	if stats.Capacity-stats.Live != stats.Free {
		t.Errorf("free set out of sync: %+v", stats)
	}
}

func TestPoolStatsArrayBacking(t *testing.T) {
	pool := NewPool[int](Array, 4)
	for i := 0; i < 100; i++ {
		pool.Allocate(i)
	}

	stats := pool.CollectStats()
	if stats.Segments != 1 {
		t.Errorf("array backing should report a single segment, got %d", stats.Segments)
	}
	if stats.Capacity != 100 {
		t.Errorf("expected capacity 100, got %d", stats.Capacity)
	}
}

func TestSparseIndexStats(t *testing.T) {
	index := NewSparseIndex[int](Segmented, 8)
	for id := uint64(0); id < 20; id++ {
		index.Add(id*1000, int(id))
	}
	index.Remove(0)

	stats := index.CollectStats()
	if stats.Live != 19 {
		t.Errorf("expected 19 live, got %d", stats.Live)
	}
	if stats.Free != 1 {
		t.Errorf("expected 1 free, got %d", stats.Free)
	}
}
