package layout

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type empty struct{}

type header struct {
	magic uint32
	size  uint32
	next  *header
}

// TestFootprint verifies zero-sized types reserve nothing and everything
// else reserves its natural in-memory size.
func TestFootprint(t *testing.T) {
	assert.Zero(t, Footprint[empty](), "a fieldless value type needs no storage")
	assert.Zero(t, Footprint[[0]uint64]())

	assert.Equal(t, 8, Footprint[uint64]())
	assert.Equal(t, int(unsafe.Sizeof(header{})), Footprint[header]())
	assert.Equal(t, int(unsafe.Sizeof(uintptr(0))), Footprint[*header](),
		"hosting a pointer costs one handle word")
	assert.Equal(t, 24, Footprint[[3]uint64]())
}

func TestFootprintOf(t *testing.T) {
	assert.Zero(t, FootprintOf(nil), "the nil interface needs no storage")
	assert.Zero(t, FootprintOf(empty{}))
	assert.Equal(t, 4, FootprintOf(uint32(9)))
	assert.Equal(t, int(unsafe.Sizeof(header{})), FootprintOf(header{}))

	// The dynamic footprint matches the generic one for any concrete type.
	assert.Equal(t, Footprint[header](), FootprintOf(header{}))
}

func TestOf(t *testing.T) {
	l := Of[header]()
	assert.Equal(t, Sizeof[header](), l.Size)
	assert.Equal(t, Alignof[header](), l.Align)
	assert.Equal(t, int(unsafe.Alignof(header{})), l.Align)

	assert.Equal(t, Layout{0, 1}, Of[empty]())
}
