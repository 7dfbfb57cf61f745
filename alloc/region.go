package alloc

import (
	"fmt"

	"github.com/joshuapare/blockalloc/arith"
)

// Region is a bump-pointer allocator over a single backing slab. Allocation
// is O(1): align the bump offset, carve, advance. Dealloc reclaims only the
// most recent block (stack discipline); anything else becomes dead space
// until DeallocAll resets the whole region.
//
// The region does not own the slab. Callers that obtained it from MmapSlab
// release it through the mapping's own release function after the region is
// done.
type Region struct {
	slab  Block
	used  int // bump offset into slab
	align int

	// lastStart is the slab offset of the most recent carve, or -1 when no
	// carve is current. It bounds the one block the region can still name,
	// for Expand and ResolveInternalPointer.
	lastStart int
}

// NewRegion creates a region over slab with the given default alignment.
// Panics unless align is a power of two; returns ErrSlabEmpty for an empty
// slab.
func NewRegion(slab []byte, align int) (*Region, error) {
	if !arith.IsPowerOf2(align) {
		panic(fmt.Sprintf("alloc: region alignment %d is not a power of two", align))
	}
	if len(slab) == 0 {
		return nil, ErrSlabEmpty
	}
	return &Region{slab: slab, align: align, lastStart: -1}, nil
}

// carve bumps the offset to the next address satisfying align and reserves
// size bytes. The returned block's capacity is pinned with a full slice
// expression so neighbors stay out of reach.
func (r *Region) carve(size, align int) Block {
	if size <= 0 {
		return nil
	}
	base := BlockAddr(r.slab)
	start := int(arith.AlignUp(base+uintptr(r.used), uintptr(align)) - base)
	end := start + size
	if end > len(r.slab) || end < start {
		return nil
	}
	r.used = end
	r.lastStart = start
	return r.slab[start:end:end]
}

func (r *Region) Alloc(size int) Block { return r.carve(size, r.align) }

func (r *Region) Alignment() int { return r.align }

func (r *Region) AllocAligned(size, align int) Block {
	if !arith.IsPowerOf2(align) {
		panic(fmt.Sprintf("alloc: AllocAligned alignment %d is not a power of two", align))
	}
	return r.carve(size, align)
}

// Expand grows b in place when it is the most recent allocation and the
// slab has room. Zero growth always succeeds.
func (r *Region) Expand(b *Block, delta int) bool {
	if delta == 0 {
		return true
	}
	if delta < 0 {
		panic("alloc: Region.Expand with negative delta")
	}
	old := *b
	if len(old) == 0 {
		return false
	}
	base := BlockAddr(r.slab)
	if BlockEnd(old) != base+uintptr(r.used) {
		return false
	}
	if r.used+delta > len(r.slab) {
		return false
	}
	start := int(BlockAddr(old) - base)
	r.used += delta
	*b = r.slab[start:r.used:r.used]
	return true
}

// Dealloc pops b when it is the most recent allocation; otherwise the
// bytes become dead space until DeallocAll.
func (r *Region) Dealloc(b Block) {
	if len(b) == 0 {
		return
	}
	base := BlockAddr(r.slab)
	if BlockEnd(b) == base+uintptr(r.used) {
		r.used = int(BlockAddr(b) - base)
		r.lastStart = -1 // the previous carve's bounds are gone
	}
}

// DeallocAll resets the region to empty.
func (r *Region) DeallocAll() bool {
	r.used = 0
	r.lastStart = -1
	return true
}

// AllocAll hands out everything left in the slab as one block.
func (r *Region) AllocAll() Block {
	base := BlockAddr(r.slab)
	start := int(arith.AlignUp(base+uintptr(r.used), uintptr(r.align)) - base)
	if start >= len(r.slab) {
		return nil
	}
	r.used = len(r.slab)
	r.lastStart = start
	return r.slab[start:r.used:r.used]
}

// ResolveInternalPointer maps an interior address to its containing block
// as far as bump bookkeeping allows: the most recent carve is the only
// block whose bounds the region still knows, so addresses in earlier
// consumed space answer Unknown. Outside the slab, or in the unconsumed
// tail, the answer is a definite No.
func (r *Region) ResolveInternalPointer(addr uintptr) (Ternary, Block) {
	if !Contains(r.slab, addr) {
		return No, nil
	}
	off := int(addr - BlockAddr(r.slab))
	if off >= r.used {
		return No, nil
	}
	if r.lastStart >= 0 && off >= r.lastStart {
		return Yes, r.slab[r.lastStart:r.used:r.used]
	}
	return Unknown, nil
}

func (r *Region) Owns(b Block) Ternary {
	if len(b) == 0 {
		return No
	}
	return TernaryOf(Contains(r.slab, BlockAddr(b)))
}

func (r *Region) Empty() Ternary {
	return TernaryOf(r.used == 0)
}

// Used returns the number of slab bytes consumed, dead space included.
func (r *Region) Used() int { return r.used }

// Available returns the slab bytes still free for carving.
func (r *Region) Available() int { return len(r.slab) - r.used }

var (
	_ Allocator        = (*Region)(nil)
	_ AlignedAllocator = (*Region)(nil)
	_ Expander         = (*Region)(nil)
	_ Deallocator      = (*Region)(nil)
	_ AllDeallocator   = (*Region)(nil)
	_ AllAllocator     = (*Region)(nil)
	_ Owner            = (*Region)(nil)
	_ PointerResolver  = (*Region)(nil)
	_ Emptier          = (*Region)(nil)
)
