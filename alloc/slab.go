package alloc

// HeapSlab returns a Go-heap-backed slab for a region or pool. The bytes
// are zero-filled, so the slab qualifies for WithFreshSlab.
func HeapSlab(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}
