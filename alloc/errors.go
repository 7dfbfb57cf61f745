package alloc

import "errors"

var (
	// ErrSlabEmpty indicates a building block was given an empty backing slab.
	ErrSlabEmpty = errors.New("alloc: backing slab is empty")

	// ErrChunkSize indicates a pool chunk size that is zero, negative, or not
	// a multiple of the pool alignment.
	ErrChunkSize = errors.New("alloc: invalid chunk size")

	// ErrParentRequired indicates a composing allocator was built without a
	// parent to draw memory from.
	ErrParentRequired = errors.New("alloc: parent allocator required")

	// ErrMissingCapability indicates a composition requires a capability the
	// given allocator type does not expose.
	ErrMissingCapability = errors.New("alloc: required capability not exposed")

	// ErrSizeClasses indicates a free-list size class configuration that
	// cannot produce a valid class table.
	ErrSizeClasses = errors.New("alloc: invalid size class configuration")
)
