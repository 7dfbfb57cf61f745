package alloc

import (
	"github.com/joshuapare/blockalloc/arith"
)

// Realloc resizes *b to newSize using whatever capabilities a exposes:
// in-place growth via Expand when present, otherwise allocate-copy, then
// Dealloc of the old block when present. Without a Deallocator the old
// block is leaked - expected for append-only allocators, not a bug.
//
// On failure *b is untouched in address, length, and content; there is no
// partial mutation. Resizing to the current length succeeds with no side
// effects. Realloc never invokes an allocator's own reallocation method:
// composed allocators implement theirs by calling this function, so
// recursion cannot occur.
func Realloc(a Allocator, b *Block, newSize int) bool {
	if newSize < 0 {
		panic("alloc: Realloc with negative size")
	}
	old := *b
	if newSize == len(old) {
		return true
	}
	if newSize > len(old) {
		if exp, ok := a.(Expander); ok && exp.Expand(b, newSize-len(old)) {
			return true
		}
	}
	return moveBlock(a, b, a.Alloc(newSize), newSize)
}

// AlignedRealloc is Realloc for a caller-chosen alignment. It requires the
// allocator to expose AllocAligned and fails when it does not. In-place
// growth is only attempted when the block's current start already
// satisfies align, since growing in place cannot change an address.
// Panics unless align is a power of two.
func AlignedRealloc(a Allocator, b *Block, newSize, align int) bool {
	if newSize < 0 {
		panic("alloc: AlignedRealloc with negative size")
	}
	if !arith.IsPowerOf2(align) {
		panic("alloc: AlignedRealloc alignment is not a power of two")
	}
	aa, ok := a.(AlignedAllocator)
	if !ok {
		return false
	}
	old := *b
	if newSize == len(old) {
		return true
	}
	if newSize > len(old) && AlignedAt(old, align) {
		if exp, ok := a.(Expander); ok && exp.Expand(b, newSize-len(old)) {
			return true
		}
	}
	fresh := aa.AllocAligned(newSize, align)
	if len(fresh) != newSize {
		return false
	}
	copy(fresh, old[:min(len(old), newSize)])
	if len(old) > 0 {
		if ad, ok := a.(AlignedDeallocator); ok {
			ad.DeallocAligned(old, align)
		} else if d, ok := a.(Deallocator); ok {
			d.Dealloc(old)
		}
	}
	*b = fresh
	return true
}

// moveBlock commits the allocate-copy-release tail of Realloc. The fresh
// block must match newSize exactly or the move is abandoned with *b
// untouched.
func moveBlock(a Allocator, b *Block, fresh Block, newSize int) bool {
	if len(fresh) != newSize {
		return false
	}
	old := *b
	copy(fresh, old[:min(len(old), newSize)])
	if len(old) > 0 {
		if d, ok := a.(Deallocator); ok {
			d.Dealloc(old)
		}
	}
	*b = fresh
	return true
}

// AllocZeroedFrom allocates size zero-filled bytes from a, using the
// allocator's own AllocZeroed when present and an explicit clear pass
// otherwise.
func AllocZeroedFrom(a Allocator, size int) Block {
	if z, ok := a.(ZeroedAllocator); ok {
		return z.AllocZeroed(size)
	}
	b := a.Alloc(size)
	clear(b)
	return b
}
