// Package corner defines the ω-tile corner-coding model: four Codes
// placed at a square tile's corners, the Edges they derive, and the
// compatibility predicate that lets two tiles sit side by side in a
// seam-free arrangement.
//
// A Tile's corners are laid out
//
//	   a ----N---- b
//	   |           |
//	   W           E
//	   |           |
//	   c ----S---- d
//
// and its edges derive as North=(a,b), East=(b,d), South=(c,d),
// West=(a,c). Two tiles are connectable along a direction iff the edge
// pair on that side reads identically in both tiles' fixed NW→SE
// traversal order; this package never reasons about rotation or
// reflection.
package corner
