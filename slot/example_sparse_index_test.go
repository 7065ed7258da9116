package slot_test

import (
	"fmt"

	"github.com/plus3/slotkit/slot"
)

// ExampleSparseIndex maps sparse entity ids to component values. Ids can
// be re-added to overwrite, and iteration visits live entries in
// ascending id order.
func ExampleSparseIndex() {
	health := slot.NewSparseIndex[int](slot.Segmented, 8)

	health.Add(900, 50)
	health.Add(3, 100)
	health.Add(3, 75) // overwrite
	health.Add(42, 25)

	if v, ok := health.Get(3); ok {
		fmt.Println("entity 3:", *v)
	}
	fmt.Println("entities:", health.Count())

	total := 0
	for id, v := range health.All() {
		fmt.Printf("id %d -> %d\n", id, *v)
		total += *v
	}
	fmt.Println("total:", total)

	// Output:
	// entity 3: 75
	// entities: 3
	// id 3 -> 75
	// id 42 -> 25
	// id 900 -> 50
	// total: 150
}
