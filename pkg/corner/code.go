package corner

import "fmt"

// Code is one of the four corner tags. It carries no ordering
// semantics; two Codes compare only for equality.
type Code int

const (
	R Code = iota
	G
	B
	Y
)

// Codes lists every Code in their fixed numeric order, used by the
// variation enumerator's Full traversal.
var Codes = [4]Code{R, G, B, Y}

// String returns the single-letter tag used throughout the package
// (error messages, cache keys, debug rendering).
func (c Code) String() string {
	switch c {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}
