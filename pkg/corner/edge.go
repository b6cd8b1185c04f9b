package corner

// Edge is the ordered pair of corner Codes read along one side of a
// tile, in that side's fixed NW->SE traversal order. Equality on the
// raw pair is correct for axis-aligned placement because every tile in
// a set shares the same NW->SE corner layout; it would not be correct
// for rotated or reflected tiles, which are out of scope.
type Edge struct {
	C1, C2 Code
}

// Equal reports whether two edges name the same pair of corners in the
// same order.
func (e Edge) Equal(other Edge) bool {
	return e.C1 == other.C1 && e.C2 == other.C2
}
