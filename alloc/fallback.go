package alloc

// Fallback composes two allocators: requests go to the primary first and
// fall through to the secondary when the primary is exhausted. Blocks are
// routed back to wherever they came from by asking the primary's Owns,
// which is why the primary type must expose that capability.
type Fallback struct {
	primary   Allocator
	secondary Allocator
	powner    Owner
}

// NewFallback pairs a primary and secondary allocator. The primary must
// expose Owns (ErrMissingCapability otherwise); the capability check runs
// here, once, not per call.
func NewFallback(primary, secondary Allocator) (*Fallback, error) {
	if primary == nil || secondary == nil {
		return nil, ErrParentRequired
	}
	if !Caps(primary).Has(CapOwns) {
		return nil, ErrMissingCapability
	}
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		powner:    primary.(Owner),
	}, nil
}

func (f *Fallback) Alloc(size int) Block {
	if b := f.primary.Alloc(size); len(b) == size && size > 0 {
		return b
	}
	return f.secondary.Alloc(size)
}

// Alignment is the weaker of the two guarantees.
func (f *Fallback) Alignment() int {
	return min(f.primary.Alignment(), f.secondary.Alignment())
}

func (f *Fallback) AllocAligned(size, align int) Block {
	if pa, ok := f.primary.(AlignedAllocator); ok {
		if b := pa.AllocAligned(size, align); len(b) == size && size > 0 {
			return b
		}
	}
	if sa, ok := f.secondary.(AlignedAllocator); ok {
		return sa.AllocAligned(size, align)
	}
	return nil
}

// Expand grows in place through whichever side owns the block.
func (f *Fallback) Expand(b *Block, delta int) bool {
	if delta == 0 {
		return true
	}
	if f.powner.Owns(*b) == Yes {
		exp, ok := f.primary.(Expander)
		return ok && exp.Expand(b, delta)
	}
	exp, ok := f.secondary.(Expander)
	return ok && exp.Expand(b, delta)
}

// Dealloc routes the block to the side that produced it.
func (f *Fallback) Dealloc(b Block) {
	if f.powner.Owns(b) == Yes {
		if d, ok := f.primary.(Deallocator); ok {
			d.Dealloc(b)
		}
		return
	}
	if d, ok := f.secondary.(Deallocator); ok {
		d.Dealloc(b)
	}
}

// Owns combines both sides: Yes from either wins, Unknown from the
// secondary keeps the answer Unknown rather than inventing a No.
func (f *Fallback) Owns(b Block) Ternary {
	if f.powner.Owns(b) == Yes {
		return Yes
	}
	so, ok := f.secondary.(Owner)
	if !ok {
		return Unknown
	}
	return so.Owns(b)
}

var (
	_ Allocator        = (*Fallback)(nil)
	_ AlignedAllocator = (*Fallback)(nil)
	_ Expander         = (*Fallback)(nil)
	_ Deallocator      = (*Fallback)(nil)
	_ Owner            = (*Fallback)(nil)
)
