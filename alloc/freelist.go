package alloc

import "math"

// SizeClassConfig defines the free-list size class strategy: linear
// increments for small chunks, exponential growth above SmallMax. Different
// configurations trade heap size against internal fragmentation.
type SizeClassConfig struct {
	// Name for this configuration (for benchmarking)
	Name string

	// Small chunk settings (linear increments)
	SmallMin       int
	SmallMax       int
	SmallIncrement int

	// Large chunk settings (exponential growth up to LargeMax)
	LargeMax     int
	GrowthFactor float64
}

// Predefined configurations.
var (
	// FineGrained: many small classes, good for varied request sizes.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       8,
		SmallMax:       256,
		SmallIncrement: 8,
		LargeMax:       16384,
		GrowthFactor:   1.5,
	}

	// Balanced: fewer classes, moderate fragmentation.
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       16,
		SmallMax:       512,
		SmallIncrement: 16,
		LargeMax:       16384,
		GrowthFactor:   1.5,
	}

	// Coarse: minimal class count, fastest lookups, most slack per chunk.
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       32,
		SmallMax:       512,
		SmallIncrement: 32,
		LargeMax:       16384,
		GrowthFactor:   2.0,
	}

	DefaultConfig = ConfigBalanced
)

// sizeClassTable holds the computed chunk size for each class.
type sizeClassTable struct {
	config     SizeClassConfig
	chunkSizes []int // reserved chunk size per class, ascending
}

func newSizeClassTable(config SizeClassConfig) (*sizeClassTable, error) {
	if config.SmallMin <= 0 || config.SmallIncrement <= 0 ||
		config.SmallMax < config.SmallMin {
		return nil, ErrSizeClasses
	}
	if config.LargeMax > config.SmallMax && config.GrowthFactor <= 1.0 {
		return nil, ErrSizeClasses
	}

	t := &sizeClassTable{config: config}

	// Phase 1: small chunks, linear increments
	for size := config.SmallMin; size <= config.SmallMax; size += config.SmallIncrement {
		t.chunkSizes = append(t.chunkSizes, size)
	}

	// Phase 2: large chunks, exponential growth
	for size := t.chunkSizes[len(t.chunkSizes)-1]; size < config.LargeMax; {
		next := int(math.Ceil(float64(size) * config.GrowthFactor))
		if next <= size {
			next = size + 1
		}
		t.chunkSizes = append(t.chunkSizes, next)
		size = next
	}

	return t, nil
}

// classFor returns the index of the smallest class whose chunk holds size,
// or len(chunkSizes) when the request is too large for any class.
func (t *sizeClassTable) classFor(size int) int {
	lo, hi := 0, len(t.chunkSizes)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.chunkSizes[mid] < size {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// classForChunk returns the class whose chunk size is exactly n, or -1.
func (t *sizeClassTable) classForChunk(n int) int {
	c := t.classFor(n)
	if c < len(t.chunkSizes) && t.chunkSizes[c] == n {
		return c
	}
	return -1
}

// FreeList is a size-class segregated free list layered over a parent
// allocator. Freed chunks are kept per class and recycled on the next
// matching request; chunks come from the parent in class-sized units, so a
// returned block's capacity records which class it belongs to. Requests
// above the largest class delegate straight to the parent.
type FreeList struct {
	parent Allocator
	table  *sizeClassTable
	free   [][]Block // per-class stack of recycled chunks

	stats FreeListStats
}

// FreeListStats counts free-list traffic for instrumentation.
type FreeListStats struct {
	Hits      int // allocations served from a recycled chunk
	Misses    int // allocations that went to the parent
	Recycled  int // chunks returned to a class list
	Delegated int // requests outside the class range
}

// NewFreeList creates a free list drawing class-sized chunks from parent.
func NewFreeList(parent Allocator, config SizeClassConfig) (*FreeList, error) {
	if parent == nil {
		return nil, ErrParentRequired
	}
	table, err := newSizeClassTable(config)
	if err != nil {
		return nil, err
	}
	return &FreeList{
		parent: parent,
		table:  table,
		free:   make([][]Block, len(table.chunkSizes)),
	}, nil
}

func (f *FreeList) Alloc(size int) Block {
	if size <= 0 {
		return nil
	}
	c := f.table.classFor(size)
	if c == len(f.table.chunkSizes) {
		f.stats.Delegated++
		return f.parent.Alloc(size)
	}
	if n := len(f.free[c]); n > 0 {
		chunk := f.free[c][n-1]
		f.free[c] = f.free[c][:n-1]
		f.stats.Hits++
		return chunk[:size:cap(chunk)]
	}
	chunkSize := f.table.chunkSizes[c]
	chunk := f.parent.Alloc(chunkSize)
	if len(chunk) != chunkSize {
		return nil
	}
	f.stats.Misses++
	return chunk[:size:chunkSize]
}

func (f *FreeList) Alignment() int { return f.parent.Alignment() }

// Dealloc recycles class-sized chunks onto their free list. Blocks whose
// capacity is not a class chunk size (delegated large requests) go back to
// the parent when it can take them.
func (f *FreeList) Dealloc(b Block) {
	if len(b) == 0 {
		return
	}
	if c := f.table.classForChunk(cap(b)); c >= 0 {
		f.free[c] = append(f.free[c], b[:cap(b):cap(b)])
		f.stats.Recycled++
		return
	}
	if d, ok := f.parent.(Deallocator); ok {
		d.Dealloc(b)
	}
}

// Owns delegates to the parent; without an owning parent the answer is
// unknowable here, since recycled chunks carry no provenance.
func (f *FreeList) Owns(b Block) Ternary {
	if o, ok := f.parent.(Owner); ok {
		return o.Owns(b)
	}
	return Unknown
}

// DeallocAll drops every recycled chunk unconditionally, then releases the
// parent wholesale. Without an AllDeallocator parent the chunks still go
// back one by one when the parent can take them, but blocks held by callers
// stay live, so the result is false.
func (f *FreeList) DeallocAll() bool {
	pd, wholesale := f.parent.(AllDeallocator)
	if !wholesale {
		if d, ok := f.parent.(Deallocator); ok {
			for _, chunks := range f.free {
				for _, chunk := range chunks {
					d.Dealloc(chunk)
				}
			}
		}
	}
	for c := range f.free {
		f.free[c] = nil
	}
	return wholesale && pd.DeallocAll()
}

// Stats returns a snapshot of free-list traffic counters.
func (f *FreeList) Stats() FreeListStats { return f.stats }

// NumClasses returns the number of size classes.
func (f *FreeList) NumClasses() int { return len(f.table.chunkSizes) }

var (
	_ Allocator      = (*FreeList)(nil)
	_ Deallocator    = (*FreeList)(nil)
	_ Owner          = (*FreeList)(nil)
	_ AllDeallocator = (*FreeList)(nil)
)
