package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundUpToMultipleOf_Scenarios tests representative values.
func TestRoundUpToMultipleOf_Scenarios(t *testing.T) {
	assert.Equal(t, 12, RoundUpToMultipleOf(10, 3))
	assert.Equal(t, 12, RoundUpToMultipleOf(12, 3))
	assert.Equal(t, 0, RoundUpToMultipleOf(0, 7))
	assert.Equal(t, 7, RoundUpToMultipleOf(1, 7))
}

// TestRoundUpToMultipleOf_Properties checks the smallest-multiple contract
// across a sweep of sizes and bases.
func TestRoundUpToMultipleOf_Properties(t *testing.T) {
	for base := 1; base <= 17; base++ {
		for s := 0; s <= 200; s++ {
			r := RoundUpToMultipleOf(s, base)
			require.Zero(t, r%base, "result must be a multiple of %d", base)
			require.GreaterOrEqual(t, r, s, "result must not shrink %d", s)
			require.Less(t, r-s, base, "result must be the smallest such multiple")
		}
	}
}

func TestRoundUpToMultipleOf_ZeroBasePanics(t *testing.T) {
	require.Panics(t, func() { RoundUpToMultipleOf(10, 0) })
}

// TestRoundToAlignment_Scenarios covers the canonical mask-rounding cases.
func TestRoundToAlignment_Scenarios(t *testing.T) {
	assert.Equal(t, 128, RoundUpToAlignment(118, 64))
	assert.Equal(t, 0, RoundDownToAlignment(63, 64))
	assert.Equal(t, 64, RoundUpToAlignment(64, 64))
	assert.Equal(t, 64, RoundDownToAlignment(64, 64))
	assert.Equal(t, 0, RoundUpToAlignment(0, 8))
}

// TestRoundToAlignment_Bracketing verifies down <= n <= up with equality
// exactly when n is already aligned.
func TestRoundToAlignment_Bracketing(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 64, 4096} {
		for n := 0; n <= 300; n++ {
			down := RoundDownToAlignment(n, align)
			up := RoundUpToAlignment(n, align)
			require.LessOrEqual(t, down, n)
			require.GreaterOrEqual(t, up, n)
			if n%align == 0 {
				require.Equal(t, n, down, "aligned value must round down to itself")
				require.Equal(t, n, up, "aligned value must round up to itself")
			} else {
				require.Less(t, down, n)
				require.Greater(t, up, n)
			}
		}
	}
}

func TestRoundToAlignment_NonPowerOf2Panics(t *testing.T) {
	require.Panics(t, func() { RoundUpToAlignment(10, 3) })
	require.Panics(t, func() { RoundDownToAlignment(10, 0) })
	require.Panics(t, func() { RoundDownToAlignment(10, 12) })
}

func TestDivideRoundUp(t *testing.T) {
	assert.Equal(t, 4, DivideRoundUp(10, 3))
	assert.Equal(t, 1, DivideRoundUp(1, 3))
	assert.Equal(t, 0, DivideRoundUp(0, 3))
	assert.Equal(t, 5, DivideRoundUp(10, 2))
	require.Panics(t, func() { DivideRoundUp(10, 0) })
}

// TestRoundUpToPowerOf2 checks the smallest-power contract and idempotence.
func TestRoundUpToPowerOf2(t *testing.T) {
	assert.Equal(t, uint(0), RoundUpToPowerOf2(uint(0)))
	assert.Equal(t, uint(1), RoundUpToPowerOf2(uint(1)))
	assert.Equal(t, uint(4), RoundUpToPowerOf2(uint(3)))
	assert.Equal(t, uint(4), RoundUpToPowerOf2(uint(4)))
	assert.Equal(t, uint(8), RoundUpToPowerOf2(uint(5)))
	assert.Equal(t, uint8(128), RoundUpToPowerOf2(uint8(100)))
	assert.Equal(t, uint8(128), RoundUpToPowerOf2(uint8(128)))

	for x := uint(0); x <= 5000; x++ {
		r := RoundUpToPowerOf2(x)
		require.Equal(t, r, RoundUpToPowerOf2(r), "must be idempotent at %d", x)
		if x > 0 {
			require.True(t, IsPowerOf2(r))
			require.GreaterOrEqual(t, r, x)
			require.Less(t, r/2, x, "must be the smallest power of two >= %d", x)
		}
	}
}

func TestRoundUpToPowerOf2_OverflowPanics(t *testing.T) {
	require.Panics(t, func() { RoundUpToPowerOf2(uint8(129)) })
	require.NotPanics(t, func() { RoundUpToPowerOf2(uint8(128)) })
}

// TestTrailingZeros returns the bit width for zero, lowest set bit index
// otherwise.
func TestTrailingZeros(t *testing.T) {
	assert.Equal(t, 32, TrailingZeros(uint32(0)))
	assert.Equal(t, 64, TrailingZeros(uint64(0)))
	assert.Equal(t, 8, TrailingZeros(uint8(0)))
	assert.Equal(t, 2, TrailingZeros(uint32(4)))
	assert.Equal(t, 0, TrailingZeros(uint32(1)))
	assert.Equal(t, 0, TrailingZeros(uint32(7)))
	assert.Equal(t, 31, TrailingZeros(uint32(1)<<31))
}

// TestEffectiveAlignment verifies the result is the largest power-of-two
// divisor of the address.
func TestEffectiveAlignment(t *testing.T) {
	assert.Equal(t, uintptr(1), EffectiveAlignment(1))
	assert.Equal(t, uintptr(2), EffectiveAlignment(6))
	assert.Equal(t, uintptr(64), EffectiveAlignment(64))
	assert.Equal(t, uintptr(64), EffectiveAlignment(192))

	for addr := uintptr(1); addr <= 2048; addr++ {
		a := EffectiveAlignment(addr)
		require.True(t, IsPowerOf2(a))
		require.Zero(t, addr%a, "alignment must divide the address")
		require.NotZero(t, addr%(a*2), "alignment must be the largest divisor")
	}

	// Zero is divisible by every power of two.
	require.True(t, IsPowerOf2(EffectiveAlignment(0)))
}

func TestAlignUpDown(t *testing.T) {
	assert.Equal(t, uintptr(128), AlignUp(118, 64))
	assert.Equal(t, uintptr(64), AlignDown(118, 64))
	assert.Equal(t, uintptr(64), AlignUp(64, 64))
	assert.Equal(t, uintptr(64), AlignDown(64, 64))
	require.Panics(t, func() { AlignUp(10, 3) })
	require.Panics(t, func() { AlignDown(10, 3) })
}

func TestIsPowerOf2(t *testing.T) {
	assert.False(t, IsPowerOf2(0))
	assert.True(t, IsPowerOf2(1))
	assert.True(t, IsPowerOf2(2))
	assert.False(t, IsPowerOf2(3))
	assert.True(t, IsPowerOf2(1024))
	assert.False(t, IsPowerOf2(-4))
}
