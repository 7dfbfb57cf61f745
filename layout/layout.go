// Package layout provides type-layout probes used to size allocations and
// to classify raw bit patterns of values.
//
// Footprint answers "how many bytes must an allocator reserve to host one
// value of this type"; the classification functions answer "is this
// value's in-memory representation all-zero or all-one bits", which lets
// allocation paths elide redundant fill passes and lets debug poisoning
// pick patterns that cannot be confused with live values.
package layout

import (
	"reflect"
	"unsafe"
)

// Sizeof returns T's size in bytes.
func Sizeof[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Alignof returns T's alignment in bytes.
func Alignof[T any]() int {
	var z T
	return int(unsafe.Alignof(z))
}

// Layout is the size and alignment of a type.
type Layout struct {
	Size  int
	Align int
}

// Of returns T's layout.
func Of[T any]() Layout {
	return Layout{Sizeof[T](), Alignof[T]()}
}

// Footprint returns the byte count an allocator must reserve to host one
// value of type T: zero for zero-sized types, the natural in-memory size
// otherwise. Go has no per-object header, so the size is the whole story;
// reference-shaped types (pointers, maps, channels, funcs) cost their
// handle size, which is what hosting the value takes.
func Footprint[T any]() int {
	return Sizeof[T]()
}

// FootprintOf is the dynamic counterpart of Footprint: the bytes needed to
// host v's concrete value. A nil interface needs no storage.
func FootprintOf(v any) int {
	if v == nil {
		return 0
	}
	return int(reflect.TypeOf(v).Size())
}
