package slot

import (
	"fmt"
	"math"
)

// InvalidIndex marks a handle that was never bound to a slot.
// No real slot ever occupies this index.
const InvalidIndex uint32 = math.MaxUint32

// Handle identifies the logical occupant of a pool slot.
//
// A handle is an index into the pool's storage paired with the generation
// the slot had when the occupant was created. The generation lets the pool
// tell a stale handle apart from a handle to the slot's current occupant:
// every removal bumps the slot's generation, so handles minted before the
// removal can never validate again.
//
// Handles are plain values; they compare with == and carry no reference to
// the pool that issued them. A handle is only meaningful to that pool.
type Handle struct {
	Index      uint32
	Generation uint32
}

// InvalidHandle returns the explicitly-invalid handle.
func InvalidHandle() Handle {
	return Handle{Index: InvalidIndex}
}

// IsValid reports whether the handle carries a real index. It says nothing
// about whether the slot is still alive; ask the pool for that.
func (h Handle) IsValid() bool {
	return h.Index != InvalidIndex
}

// Key packs the handle into a single uint64 for use as a map key.
func (h Handle) Key() uint64 {
	return uint64(h.Index)<<32 | uint64(h.Generation)
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	if !h.IsValid() {
		return "slot(invalid)"
	}
	return fmt.Sprintf("slot(%d@g%d)", h.Index, h.Generation)
}
