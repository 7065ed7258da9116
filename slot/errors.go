package slot

import "github.com/pkg/errors"

// Sentinel errors returned by the containers in this package. All of them
// are caller-recoverable; match with errors.Is. Operations that return one
// of these leave the container unchanged.
var (
	// ErrOutOfRange reports an index that was never reserved.
	ErrOutOfRange = errors.New("slot: index out of range")

	// ErrNotOccupied reports an access to a slot that is currently free,
	// including access through a stale handle whose slot was released.
	ErrNotOccupied = errors.New("slot: slot not occupied")

	// ErrDoubleRelease reports a release of a slot that is already free.
	ErrDoubleRelease = errors.New("slot: slot already released")

	// ErrNotFound reports a node reference that does not belong to the
	// list, or whose node was already removed.
	ErrNotFound = errors.New("slot: node not found in list")
)
