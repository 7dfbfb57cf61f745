package layout

import (
	"bytes"
	"reflect"
	"runtime"
	"sync"
	"unsafe"
)

// Pattern classifies a value's in-memory representation.
type Pattern uint8

const (
	// PatternMixed: neither uniformly zero nor uniformly one bits.
	PatternMixed Pattern = iota

	// PatternZero: every non-padding bit is zero. Padding is excluded
	// because its content is not deterministic.
	PatternZero

	// PatternOnes: every bit is one and the aggregate has no padding gaps,
	// so the whole representation is 0xFF bytes.
	PatternOnes
)

func (p Pattern) String() string {
	switch p {
	case PatternZero:
		return "zero"
	case PatternOnes:
		return "ones"
	default:
		return "mixed"
	}
}

// Classify inspects v's raw representation and reports whether it is
// all-zero bits, all-one bits, or mixed.
//
// The walk is structural: struct fields classify individually, with
// inter-field padding excluded from the zero test and disqualifying for
// the ones test (allocators must not assume padding bits are
// deterministic). Fixed-size arrays classify uniformly only when every
// element is byte-identical to the first - raw bytes, never an Equal
// method, since method semantics say nothing about bit content. Pointer,
// map, channel, and func words classify like integers of pointer width,
// so nil pointers are zero.
//
// A nil interface classifies as zero: it is the null value and occupies
// no storage.
func Classify(v any) Pattern {
	if v == nil {
		return PatternZero
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()
	p := reflect.New(t)
	p.Elem().Set(rv)
	z, o := classify(t, p.UnsafePointer(), 0)
	runtime.KeepAlive(p)
	switch {
	case z:
		return PatternZero
	case o:
		return PatternOnes
	default:
		return PatternMixed
	}
}

// AllZero reports whether v's representation is all-zero bits outside
// padding.
func AllZero(v any) bool { return Classify(v) == PatternZero }

// AllOnes reports whether v's representation is all-one bits with no
// padding gaps.
func AllOnes(v any) bool { return Classify(v) == PatternOnes }

// typePatterns memoizes ClassifyType results. A type's zero-value pattern
// never changes, so concurrent first use needs no coordination beyond the
// map.
var typePatterns sync.Map // reflect.Type -> Pattern

// ClassifyType returns the classification of T's zero value, computed once
// per type. Fill-elision paths use it to learn whether default-initialized
// storage for T needs an explicit clear beyond what a fresh zero page
// already provides.
func ClassifyType[T any]() Pattern {
	t := reflect.TypeFor[T]()
	if p, ok := typePatterns.Load(t); ok {
		return p.(Pattern)
	}
	p := reflect.New(t)
	z, o := classify(t, p.UnsafePointer(), 0)
	runtime.KeepAlive(p)
	pat := PatternMixed
	switch {
	case z:
		pat = PatternZero
	case o:
		pat = PatternOnes
	}
	typePatterns.Store(t, pat)
	return pat
}

// classify walks t's layout at base+off and reports (allZero, allOnes).
// Zero-sized types are vacuously both.
func classify(t reflect.Type, base unsafe.Pointer, off uintptr) (zero, ones bool) {
	switch t.Kind() {
	case reflect.Struct:
		zero, ones = true, true
		var fieldSum uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			fz, fo := classify(f.Type, base, off+f.Offset)
			zero = zero && fz
			ones = ones && fo
			fieldSum += f.Type.Size()
		}
		// A padding gap can be neither zero nor one.
		if fieldSum != t.Size() {
			ones = false
		}
		return zero, ones

	case reflect.Array:
		n := t.Len()
		if n == 0 {
			return true, true
		}
		esz := t.Elem().Size()
		first := byteRange(base, off, esz)
		for i := 1; i < n; i++ {
			if !bytes.Equal(first, byteRange(base, off+uintptr(i)*esz, esz)) {
				return false, false
			}
		}
		return classify(t.Elem(), base, off)

	default:
		// Scalars, pointers, strings, slices, interfaces: classify the raw
		// word(s) directly.
		b := byteRange(base, off, t.Size())
		return uniform(b, 0x00), uniform(b, 0xFF)
	}
}

func byteRange(base unsafe.Pointer, off, size uintptr) []byte {
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(base, off)), size)
}

func uniform(b []byte, want byte) bool {
	for _, c := range b {
		if c != want {
			return false
		}
	}
	return true
}
