//go:build unix

package alloc

import (
	"errors"

	"golang.org/x/sys/unix"
)

// MmapSlab returns a slab backed by an anonymous private mapping, plus a
// release function that unmaps it. The kernel hands out zero pages, so the
// slab qualifies for WithFreshSlab. Callers must not touch any block
// carved from the slab after release.
func MmapSlab(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, func() error { return nil }, nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, release, nil
}
