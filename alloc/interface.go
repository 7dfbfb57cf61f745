package alloc

// Allocator is the mandatory baseline every building block implements.
//
// Alloc returns the empty block on exhaustion and for size-zero requests.
// Alignment is the guaranteed alignment of every block Alloc returns; it
// must be a power of two and must not change over the allocator's lifetime.
type Allocator interface {
	Alloc(size int) Block
	Alignment() int
}

// Everything below is an optional capability. A concrete allocator exposes
// a capability by implementing the interface; the set it implements is
// fixed for the lifetime of the type. Generic algorithms discover
// capabilities through interface upgrades (see Caps, Realloc) and never
// require one that is absent.

// Expander grows a block in place. On failure the block is unchanged.
// Expand with delta == 0 must always succeed, whatever the block.
type Expander interface {
	Expand(b *Block, delta int) bool
}

// AlignedAllocator allocates with a caller-chosen alignment, which must be
// a power of two.
type AlignedAllocator interface {
	AllocAligned(size, align int) Block
}

// Deallocator releases a block previously returned by the same allocator.
type Deallocator interface {
	Dealloc(b Block)
}

// AlignedDeallocator releases a block obtained through AllocAligned with
// the same alignment.
type AlignedDeallocator interface {
	DeallocAligned(b Block, align int)
}

// AllDeallocator releases every outstanding block at once. The return
// value reports whether the allocator actually reclaimed anything it is
// able to reclaim.
type AllDeallocator interface {
	DeallocAll() bool
}

// Owner answers whether a block was produced by this allocator.
type Owner interface {
	Owns(b Block) Ternary
}

// PointerResolver maps an interior address to the allocated block that
// contains it.
type PointerResolver interface {
	ResolveInternalPointer(addr uintptr) (Ternary, Block)
}

// AllAllocator hands out all remaining memory as a single block.
type AllAllocator interface {
	AllocAll() Block
}

// ZeroedAllocator allocates memory guaranteed to be zero-filled. Sources
// that hand out fresh zero pages may satisfy this without an explicit
// fill pass.
type ZeroedAllocator interface {
	AllocZeroed(size int) Block
}

// Emptier answers whether the allocator currently has no outstanding
// allocations.
type Emptier interface {
	Empty() Ternary
}
