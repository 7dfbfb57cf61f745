package alloc

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/joshuapare/blockalloc/arith"
)

// BitPool carves a backing slab into fixed-size chunks and tracks free
// chunks in a bitmap of slot indices. Allocation takes the lowest free
// slot; deallocation clears its bit. Because slot boundaries are
// computable from any interior address, the pool can resolve internal
// pointers and answer ownership exactly.
type BitPool struct {
	slab   Block
	chunk  int
	align  int
	nslots int

	free *roaring.Bitmap // free slot indices

	// slots at or beyond virgin were never handed out; when the slab came
	// from a fresh zero-page source they need no clearing in AllocZeroed.
	virgin    int
	freshSlab bool
}

// BitPoolOption tunes pool construction.
type BitPoolOption func(*BitPool)

// WithFreshSlab declares that the slab is known zero-filled (anonymous
// mappings, fresh make([]byte)), letting AllocZeroed skip the fill pass
// for slots that were never handed out.
func WithFreshSlab() BitPoolOption {
	return func(p *BitPool) { p.freshSlab = true }
}

// NewBitPool creates a pool of chunkSize-byte chunks over slab. The slab
// start must satisfy align and chunkSize must be a positive multiple of
// align so that every chunk start stays aligned. Panics unless align is a
// power of two.
func NewBitPool(slab []byte, chunkSize, align int, opts ...BitPoolOption) (*BitPool, error) {
	if !arith.IsPowerOf2(align) {
		panic(fmt.Sprintf("alloc: bitpool alignment %d is not a power of two", align))
	}
	if len(slab) == 0 {
		return nil, ErrSlabEmpty
	}
	if chunkSize <= 0 || chunkSize%align != 0 {
		return nil, ErrChunkSize
	}
	aligned := AlignBlock(slab, align)
	nslots := len(aligned) / chunkSize
	if nslots == 0 {
		return nil, ErrChunkSize
	}
	p := &BitPool{
		slab:   aligned[:nslots*chunkSize],
		chunk:  chunkSize,
		align:  align,
		nslots: nslots,
		free:   roaring.New(),
	}
	p.free.AddRange(0, uint64(nslots))
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// slot returns the block for slot index i, capacity pinned to the chunk.
func (p *BitPool) slot(i int) Block {
	off := i * p.chunk
	return p.slab[off : off+p.chunk : off+p.chunk]
}

// slotOf returns the slot index containing addr, or -1.
func (p *BitPool) slotOf(addr uintptr) int {
	if !Contains(p.slab, addr) {
		return -1
	}
	return int(addr-BlockAddr(p.slab)) / p.chunk
}

// Alloc serves a request of up to one chunk from the lowest free slot.
// Requests larger than the chunk size fail; the pool trades generality for
// exact ownership answers.
func (p *BitPool) Alloc(size int) Block {
	if size <= 0 || size > p.chunk || p.free.IsEmpty() {
		return nil
	}
	i := int(p.free.Minimum())
	p.free.Remove(uint32(i))
	if i >= p.virgin {
		p.virgin = i + 1
	}
	b := p.slot(i)
	return b[:size:p.chunk]
}

func (p *BitPool) Alignment() int { return p.align }

// AllocZeroed is Alloc plus a zero guarantee. The fill pass is elided for
// never-used slots of a declared-fresh slab.
func (p *BitPool) AllocZeroed(size int) Block {
	if size <= 0 || size > p.chunk || p.free.IsEmpty() {
		return nil
	}
	i := int(p.free.Minimum())
	untouched := p.freshSlab && i >= p.virgin
	p.free.Remove(uint32(i))
	if i >= p.virgin {
		p.virgin = i + 1
	}
	b := p.slot(i)
	if !untouched {
		clear(b)
	}
	return b[:size:p.chunk]
}

// Dealloc returns b's slot to the free set. Blocks from other allocators
// are ignored.
func (p *BitPool) Dealloc(b Block) {
	if len(b) == 0 {
		return
	}
	i := p.slotOf(BlockAddr(b))
	if i < 0 {
		return
	}
	p.free.Add(uint32(i))
}

// DeallocAll frees every slot at once.
func (p *BitPool) DeallocAll() bool {
	p.free.Clear()
	p.free.AddRange(0, uint64(p.nslots))
	return true
}

func (p *BitPool) Owns(b Block) Ternary {
	if len(b) == 0 {
		return No
	}
	return TernaryOf(Contains(p.slab, BlockAddr(b)))
}

// ResolveInternalPointer maps an interior address to its containing
// allocated chunk. Addresses in free slots or outside the slab answer No.
func (p *BitPool) ResolveInternalPointer(addr uintptr) (Ternary, Block) {
	i := p.slotOf(addr)
	if i < 0 || p.free.Contains(uint32(i)) {
		return No, nil
	}
	return Yes, p.slot(i)
}

func (p *BitPool) Empty() Ternary {
	return TernaryOf(p.free.GetCardinality() == uint64(p.nslots))
}

// ChunkSize returns the fixed per-slot size.
func (p *BitPool) ChunkSize() int { return p.chunk }

// Slots returns the total slot count.
func (p *BitPool) Slots() int { return p.nslots }

// FreeSlots returns the number of slots currently free.
func (p *BitPool) FreeSlots() int { return int(p.free.GetCardinality()) }

var (
	_ Allocator       = (*BitPool)(nil)
	_ ZeroedAllocator = (*BitPool)(nil)
	_ Deallocator     = (*BitPool)(nil)
	_ AllDeallocator  = (*BitPool)(nil)
	_ Owner           = (*BitPool)(nil)
	_ PointerResolver = (*BitPool)(nil)
	_ Emptier         = (*BitPool)(nil)
)
