// Package alloc provides composable memory-allocator building blocks.
//
// # Overview
//
// Allocators are assembled by policy rather than inheritance: each concrete
// allocator exposes a subset of optional capabilities, and generic helpers
// such as Realloc adapt to whatever subset is present. The package supplies
// the capability interfaces, the generic algorithms layered on them, and a
// set of independently usable building blocks (bump region, segregated free
// list, bitmapped pool, fallback composer).
//
// # Blocks
//
// The unit of currency is the Block, a plain byte slice. A nil or empty
// block is the canonical "no memory" value; Alloc-family methods return it
// both for size-zero requests and on exhaustion, distinguished only by
// convention. A block is exclusively owned by the allocator that returned
// it until handed back to Dealloc, Expand, or Realloc on that same
// allocator. Blocks carry their reserved capacity in the slice capacity;
// allocators that over-reserve (size classes) use a full slice expression
// so Dealloc can recover the chunk from cap.
//
// # Capabilities
//
// The mandatory baseline is the Allocator interface: Alloc plus a declared
// Alignment. Everything else is optional, expressed as the usual Go
// interface-upgrade pattern:
//
//	if exp, ok := a.(Expander); ok {
//	    grown = exp.Expand(&b, delta)
//	}
//
// The capability set of a concrete type is fixed for the lifetime of that
// type. Caps computes it once per type and memoizes the result, so
// composition and introspection never pay a per-call inspection cost.
//
// # Generic reallocation
//
//	var b alloc.Block
//	ok := alloc.Realloc(a, &b, 4096)
//
// Realloc and AlignedRealloc work against any capability subset: in-place
// growth when the allocator can Expand, allocate-copy-release otherwise,
// and allocate-copy-leak when no Dealloc exists. On failure the caller's
// block is left untouched in address, length, and content.
//
// # Queries
//
// Owns, ResolveInternalPointer, and Empty answer in three values: Yes, No,
// or Unknown. Unknown means "this allocator cannot answer" and is a
// legitimate terminal result, not an error.
//
// # Thread safety
//
// The generic helpers add no locking. They mutate exactly one resource,
// the caller-supplied block reference, and rely on the underlying
// allocator's own synchronization contract. The concrete building blocks
// in this package are not thread-safe; callers synchronize externally.
package alloc
