package alloc

// Null is the allocator that refuses everything: Alloc always returns the
// empty block, Owns is always No, Empty is always Yes. It terminates
// composition chains and doubles as the canonical test allocator for the
// no-partial-mutation guarantee of Realloc.
type Null struct{}

func (Null) Alloc(size int) Block { return nil }

func (Null) Alignment() int { return 1 }

func (Null) AllocAligned(size, align int) Block { return nil }

// Expand succeeds only for zero growth, which must always succeed.
func (Null) Expand(b *Block, delta int) bool { return delta == 0 }

func (Null) Dealloc(b Block) {}

func (Null) DeallocAll() bool { return true }

func (Null) Owns(b Block) Ternary { return No }

func (Null) Empty() Ternary { return Yes }

var (
	_ Allocator        = Null{}
	_ AlignedAllocator = Null{}
	_ Expander         = Null{}
	_ Deallocator      = Null{}
	_ AllDeallocator   = Null{}
	_ Owner            = Null{}
	_ Emptier          = Null{}
)
