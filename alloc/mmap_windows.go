//go:build windows

package alloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// MmapSlab returns a slab backed by VirtualAlloc committed pages, plus a
// release function that frees the reservation. Windows commits zero pages,
// so the slab qualifies for WithFreshSlab.
func MmapSlab(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, func() error { return nil }, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}
	return data, release, nil
}
