package slot_test

import "github.com/plus3/slotkit/slot"

// Common payload types used across the container tests.
type Particle struct {
	X, Y   float32
	DX, DY float32
}

// backings enumerates the pool configurations every behavioral test
// should hold under.
var backings = []struct {
	name    string
	backing slot.Backing
}{
	{"segmented", slot.Segmented},
	{"array", slot.Array},
}
