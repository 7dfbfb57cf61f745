package alloc

import (
	"reflect"
	"strings"
	"sync"
)

// CapSet is the set of optional capabilities a concrete allocator type
// exposes, as a bitmask.
type CapSet uint16

const (
	CapExpand CapSet = 1 << iota
	CapAlignedAlloc
	CapDealloc
	CapAlignedDealloc
	CapDeallocAll
	CapOwns
	CapResolve
	CapAllocAll
	CapAllocZeroed
	CapEmpty
)

// Has reports whether s contains every capability in c.
func (s CapSet) Has(c CapSet) bool {
	return s&c == c
}

func (s CapSet) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		c CapSet
		n string
	}{
		{CapExpand, "expand"},
		{CapAlignedAlloc, "alignedAlloc"},
		{CapDealloc, "dealloc"},
		{CapAlignedDealloc, "alignedDealloc"},
		{CapDeallocAll, "deallocAll"},
		{CapOwns, "owns"},
		{CapResolve, "resolve"},
		{CapAllocAll, "allocAll"},
		{CapAllocZeroed, "allocZeroed"},
		{CapEmpty, "empty"},
	}
	var parts []string
	for _, e := range names {
		if s.Has(e.c) {
			parts = append(parts, e.n)
		}
	}
	return strings.Join(parts, "|")
}

// capCache memoizes CapSet per concrete allocator type. Capability sets
// are fixed for the lifetime of a type, so concurrent first use needs no
// coordination beyond the map itself.
var capCache sync.Map // reflect.Type -> CapSet

// Caps returns the capability set of a's concrete type, computed once per
// type and memoized. Composers use it to validate a pairing up front
// instead of probing capabilities per call.
func Caps(a Allocator) CapSet {
	t := reflect.TypeOf(a)
	if s, ok := capCache.Load(t); ok {
		return s.(CapSet)
	}
	s := capsOf(a)
	capCache.Store(t, s)
	return s
}

func capsOf(a Allocator) CapSet {
	var s CapSet
	if _, ok := a.(Expander); ok {
		s |= CapExpand
	}
	if _, ok := a.(AlignedAllocator); ok {
		s |= CapAlignedAlloc
	}
	if _, ok := a.(Deallocator); ok {
		s |= CapDealloc
	}
	if _, ok := a.(AlignedDeallocator); ok {
		s |= CapAlignedDealloc
	}
	if _, ok := a.(AllDeallocator); ok {
		s |= CapDeallocAll
	}
	if _, ok := a.(Owner); ok {
		s |= CapOwns
	}
	if _, ok := a.(PointerResolver); ok {
		s |= CapResolve
	}
	if _, ok := a.(AllAllocator); ok {
		s |= CapAllocAll
	}
	if _, ok := a.(ZeroedAllocator); ok {
		s |= CapAllocZeroed
	}
	if _, ok := a.(Emptier); ok {
		s |= CapEmpty
	}
	return s
}
