//go:build !unix && !windows

package alloc

// MmapSlab falls back to a heap slab on platforms without anonymous
// mappings. Heap slabs are zero-filled, so callers keep the freshness
// guarantee.
func MmapSlab(size int) ([]byte, func() error, error) {
	return HeapSlab(size), func() error { return nil }, nil
}
