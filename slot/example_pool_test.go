package slot_test

import (
	"fmt"

	"github.com/plus3/slotkit/slot"
)

// ExamplePool demonstrates slot allocation and the lowest-index-first
// reuse order: after a batch of releases, new allocations fill the freed
// slots starting from the smallest index.
func ExamplePool() {
	pool := slot.NewPool[string](slot.Segmented, 4)

	for _, name := range []string{"ash", "birch", "cedar", "oak"} {
		pool.Allocate(name)
	}

	pool.Release(3)
	pool.Release(1)

	fmt.Println("reused:", pool.Allocate("pine"))
	fmt.Println("reused:", pool.Allocate("fir"))
	fmt.Println("grown: ", pool.Allocate("elm"))

	for i, v := range pool.All() {
		fmt.Printf("%d=%s ", i, *v)
	}
	fmt.Println()

	// Output:
	// reused: 1
	// reused: 3
	// grown:  4
	// 0=ash 1=pine 2=cedar 3=fir 4=elm
}

// ExampleHandle shows borrowing a slot through a handle and the stale
// handle detection after release.
func ExampleHandle() {
	pool := slot.NewPool[int](slot.Segmented, 4)

	h := pool.AllocateHandle(7)
	v, _ := h.Access()
	fmt.Println("value:", *v)

	h.Release()
	if _, err := h.Access(); err != nil {
		fmt.Println("after release: stale")
	}

	// Output:
	// value: 7
	// after release: stale
}
