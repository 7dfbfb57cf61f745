// Package arith provides the alignment and size arithmetic shared by all
// allocator building blocks.
//
// Every function here is pure and allocation-free. Alignments are always
// powers of two; passing anything else is a programming error and panics
// rather than returning a recoverable failure. The same applies to the
// zero-divisor cases of RoundUpToMultipleOf and DivideRoundUp.
package arith

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Integer covers every integer type the arithmetic operates on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Unsigned covers the unsigned subset, used where bit-level operations
// would be ambiguous on negative values.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsPowerOf2 reports whether x is a power of two. Zero is not.
func IsPowerOf2[T Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// RoundUpToMultipleOf returns the smallest multiple of base that is >= s.
// Panics if base is zero.
//
// Example:
//
//	RoundUpToMultipleOf(10, 3) = 12
//	RoundUpToMultipleOf(12, 3) = 12
func RoundUpToMultipleOf[T Integer](s, base T) T {
	if base == 0 {
		panic("arith: RoundUpToMultipleOf with zero base")
	}
	rem := s % base
	if rem == 0 {
		return s
	}
	return s + base - rem
}

// RoundUpToAlignment returns n aligned up to the next multiple of align.
// Panics unless align is a power of two.
//
// Example:
//
//	RoundUpToAlignment(118, 64) = 128
//	RoundUpToAlignment(128, 64) = 128
func RoundUpToAlignment[T Integer](n, align T) T {
	mustPowerOf2(align)
	return (n + align - 1) &^ (align - 1)
}

// RoundDownToAlignment returns n aligned down to the previous multiple of
// align. Panics unless align is a power of two.
//
// Example:
//
//	RoundDownToAlignment(63, 64) = 0
//	RoundDownToAlignment(64, 64) = 64
func RoundDownToAlignment[T Integer](n, align T) T {
	mustPowerOf2(align)
	return n &^ (align - 1)
}

// DivideRoundUp returns ceil(a / b). Panics if b is zero.
func DivideRoundUp[T Integer](a, b T) T {
	if b == 0 {
		panic("arith: DivideRoundUp with zero divisor")
	}
	return (a + b - 1) / b
}

// RoundUpToPowerOf2 returns the smallest power of two >= s, with 0 mapping
// to 0. Panics if s exceeds half the maximum representable value plus one,
// since the result would overflow.
func RoundUpToPowerOf2[T Unsigned](s T) T {
	if s <= 1 {
		return s
	}
	max := ^T(0)
	if s > max/2+1 {
		panic(fmt.Sprintf("arith: RoundUpToPowerOf2(%d) overflows", uint64(s)))
	}
	return T(1) << (BitWidth(s) - leadingZeros(s-1))
}

// TrailingZeros returns the index of the lowest set bit of x, or the bit
// width of x's type when x is zero (the "all bits clear" sentinel).
//
// Example:
//
//	TrailingZeros(uint32(4)) = 2
//	TrailingZeros(uint32(0)) = 32
func TrailingZeros[T Unsigned](x T) int {
	if x == 0 {
		return BitWidth(x)
	}
	return bits.TrailingZeros64(uint64(x))
}

// EffectiveAlignment returns the largest power of two dividing addr - how
// strictly addr happens to be aligned. Zero, divisible by every power of
// two, reports the largest representable one.
func EffectiveAlignment(addr uintptr) uintptr {
	if addr == 0 {
		return uintptr(1) << (bits.UintSize - 1)
	}
	return addr & (^addr + 1)
}

// AlignUp returns the nearest address >= addr satisfying align. No bounds
// checks are performed against any surrounding region; combine with block
// arithmetic when bounds matter. Panics unless align is a power of two.
func AlignUp(addr, align uintptr) uintptr {
	mustPowerOf2(align)
	return (addr + align - 1) &^ (align - 1)
}

// AlignDown returns the nearest address <= addr satisfying align. Panics
// unless align is a power of two.
func AlignDown(addr, align uintptr) uintptr {
	mustPowerOf2(align)
	return addr &^ (align - 1)
}

// BitWidth returns the number of bits in x's type.
func BitWidth[T Integer](x T) int {
	return int(unsafe.Sizeof(x)) * 8
}

func leadingZeros[T Unsigned](x T) int {
	return bits.LeadingZeros64(uint64(x)) - (64 - BitWidth(x))
}

func mustPowerOf2[T Integer](align T) {
	if !IsPowerOf2(align) {
		panic(fmt.Sprintf("arith: alignment %d is not a power of two", int64(align)))
	}
}
