package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockalloc/arith"
)

func TestBlockAddr_Empty(t *testing.T) {
	assert.Zero(t, BlockAddr(nil))
	assert.Zero(t, BlockAddr(Block{}))
	assert.Zero(t, BlockEnd(nil))
}

func TestBlockAddr_Range(t *testing.T) {
	b := make([]byte, 16)
	require.NotZero(t, BlockAddr(b))
	assert.Equal(t, BlockAddr(b)+16, BlockEnd(b))
	assert.Equal(t, BlockAddr(b)+4, BlockAddr(b[4:]))
}

// TestAlignBlock_AdvancesStart verifies the aligned sub-block starts at the
// next satisfying address and shrinks accordingly.
func TestAlignBlock_AdvancesStart(t *testing.T) {
	slab := make([]byte, 256)

	// Work from an offset guaranteed to be misaligned for align=64.
	start := arith.AlignUp(BlockAddr(slab), 64) - BlockAddr(slab)
	misaligned := slab[start+1:]

	aligned := AlignBlock(misaligned, 64)
	require.NotEmpty(t, aligned)
	assert.True(t, AlignedAt(aligned, 64), "aligned block must satisfy the alignment")
	assert.Equal(t, BlockEnd(misaligned), BlockEnd(aligned), "end must not move")
	assert.Less(t, len(aligned), len(misaligned), "length must shrink")

	// Already-aligned input comes back unchanged.
	pre := slab[start : start+64]
	same := AlignBlock(pre, 64)
	assert.Equal(t, BlockAddr(pre), BlockAddr(same))
	assert.Len(t, same, 64)
}

// TestAlignBlock_NoUsableSubBlock verifies nil comes back when the aligned
// start would reach or exceed the block's end - "no memory", not an error.
func TestAlignBlock_NoUsableSubBlock(t *testing.T) {
	slab := make([]byte, 4096)
	start := arith.AlignUp(BlockAddr(slab), 64) - BlockAddr(slab)

	// One byte past an aligned address, shorter than the next boundary.
	tiny := slab[start+1 : start+32]
	assert.Nil(t, AlignBlock(tiny, 64))

	assert.Nil(t, AlignBlock(nil, 64))
}

func TestAlignBlock_BadAlignmentPanics(t *testing.T) {
	require.Panics(t, func() { AlignBlock(make([]byte, 8), 3) })
	require.Panics(t, func() { AlignBlock(nil, 0) })
}

func TestContainsOverlaps(t *testing.T) {
	slab := make([]byte, 64)
	a := slab[0:16]
	b := slab[16:32]
	c := slab[8:24]

	assert.True(t, Contains(a, BlockAddr(a)))
	assert.True(t, Contains(a, BlockAddr(a)+15))
	assert.False(t, Contains(a, BlockAddr(a)+16))
	assert.False(t, Contains(nil, 0))

	assert.False(t, Overlaps(a, b), "adjacent blocks do not overlap")
	assert.True(t, Overlaps(a, c))
	assert.True(t, Overlaps(c, b))
	assert.False(t, Overlaps(a, nil))
}
