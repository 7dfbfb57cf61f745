package alloc

import "github.com/joshuapare/blockalloc/layout"

const (
	// PoisonOnes is the preferred debug fill for released memory: all-one
	// bits, which no zero-defaulted value legitimately carries.
	PoisonOnes byte = 0xFF

	// PoisonAlt is the fallback fill for shapes whose legitimate values can
	// themselves be all-one bits.
	PoisonAlt byte = 0xA5
)

// PoisonPattern picks the debug fill byte for memory that held values
// shaped like proto. The all-one pattern is chosen only when a
// legitimately initialized value of that shape cannot itself be all-one
// bits; otherwise the alternating pattern keeps poisoned memory
// distinguishable.
func PoisonPattern(proto any) byte {
	if layout.AllOnes(proto) {
		return PoisonAlt
	}
	return PoisonOnes
}

// Poison fills a released block with pat so stale reads surface in debug
// runs. The block must still be owned by the caller; poisoning after the
// allocator reuses it corrupts live data.
func Poison(b Block, pat byte) {
	for i := range b {
		b[i] = pat
	}
}
