package alloc

// Ternary is a three-valued query result for questions an allocator may be
// unable to answer without extra bookkeeping (Owns, ResolveInternalPointer,
// Empty). Unknown is a legitimate terminal answer, never an error: callers
// proceed without the information rather than treating it as success or
// failure.
type Ternary uint8

const (
	Unknown Ternary = iota
	No
	Yes
)

// TernaryOf converts a boolean answer to its Ternary form.
func TernaryOf(b bool) Ternary {
	if b {
		return Yes
	}
	return No
}

func (t Ternary) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}
