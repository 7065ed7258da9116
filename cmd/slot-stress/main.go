package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/slotkit/slot"
)

type particle struct {
	X, Y   float32
	DX, DY float32
	Hits   int
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	elements := flag.Int("elements", 10000, "The number of live elements to hold in each container.")
	churn := flag.Float64("churn", 0.25, "The fraction of elements released and reallocated per batch.")
	backingFlag := flag.String("backing", "segmented", "Pool backing to stress: segmented or array.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	var backing slot.Backing
	switch *backingFlag {
	case "segmented":
		backing = slot.Segmented
	case "array":
		backing = slot.Array
	default:
		log.Fatalf("unknown backing %q", *backingFlag)
	}

	log.Println("Starting slot storage stress test...")

	// 1. Build the containers under test.
	pool := slot.NewPool[particle](backing, 64)
	index := slot.NewSparseIndex[particle](backing, 64)
	list := slot.NewList[particle](backing, 64)

	// 2. Populate to the steady-state size.
	log.Printf("Populating containers with %d elements...\n", *elements)
	poolIndices := make([]int, *elements)
	ids := make([]uint64, *elements)
	refs := make([]slot.NodeRef[particle], *elements)
	for i := 0; i < *elements; i++ {
		p := particle{X: rand.Float32(), Y: rand.Float32()}
		poolIndices[i] = pool.Allocate(p)
		ids[i] = uint64(i) * 7 // sparse, non-contiguous ids
		index.Add(ids[i], p)
		refs[i] = list.PushBack(p)
	}
	log.Println("Population complete.")

	// 3. Run churn batches until the deadline.
	report := &Report{
		Duration:       *duration,
		Elements:       *elements,
		Churn:          *churn,
		Backing:        *backingFlag,
		GCPauseMetrics: *gcPauseMetrics,
		BatchTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn batches for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	batchSize := int(float64(*elements) * *churn)
	if batchSize < 1 {
		batchSize = 1
	}

	startTime := time.Now()
	var totalBatches int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			batchStart := time.Now()

			for n := 0; n < batchSize; n++ {
				at := rand.Intn(*elements)

				if err := pool.Release(poolIndices[at]); err != nil {
					log.Fatalf("pool release: %v", err)
				}
				poolIndices[at] = pool.Allocate(particle{X: rand.Float32()})

				index.Remove(ids[at])
				index.Add(ids[at], particle{Y: rand.Float32()})

				if err := list.Remove(refs[at]); err != nil {
					log.Fatalf("list remove: %v", err)
				}
				refs[at] = list.PushBack(particle{DX: rand.Float32()})
			}

			report.BatchTime.Samples = append(report.BatchTime.Samples, time.Since(batchStart))
			totalBatches++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalBatches = totalBatches
	report.TotalOps = totalBatches * int64(batchSize) * 3
	report.BatchTime.Finalize()
	report.PoolStats = pool.CollectStats()
	report.IndexStats = index.CollectStats()
	report.ListStats = list.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
