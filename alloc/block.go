package alloc

import (
	"unsafe"

	"github.com/joshuapare/blockalloc/arith"
)

// Block is a contiguous memory region handed out by an allocator. A nil or
// empty block is the canonical "no memory" value.
type Block = []byte

// BlockAddr returns the start address of b, or 0 for the empty block.
func BlockAddr(b Block) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// BlockEnd returns the address one past the last byte of b, or 0 for the
// empty block.
func BlockEnd(b Block) uintptr {
	if len(b) == 0 {
		return 0
	}
	return BlockAddr(b) + uintptr(len(b))
}

// AlignedAt reports whether b's start address satisfies align.
// Panics unless align is a power of two.
func AlignedAt(b Block, align int) bool {
	return arith.RoundDownToAlignment(BlockAddr(b), uintptr(align)) == BlockAddr(b)
}

// AlignBlock advances b's start to the next address satisfying align,
// shrinking its length accordingly. It returns nil when no usable aligned
// sub-block remains - that is "no memory", not an error. Panics unless
// align is a power of two.
func AlignBlock(b Block, align int) Block {
	if len(b) == 0 {
		arith.AlignUp(0, uintptr(align)) // still validate align
		return nil
	}
	start := BlockAddr(b)
	aligned := arith.AlignUp(start, uintptr(align))
	off := aligned - start
	if off >= uintptr(len(b)) {
		return nil
	}
	return b[off:]
}

// Contains reports whether addr falls inside b.
func Contains(b Block, addr uintptr) bool {
	return len(b) > 0 && addr >= BlockAddr(b) && addr < BlockEnd(b)
}

// Overlaps reports whether two blocks share any address.
func Overlaps(a, b Block) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return BlockAddr(a) < BlockEnd(b) && BlockAddr(b) < BlockEnd(a)
}
