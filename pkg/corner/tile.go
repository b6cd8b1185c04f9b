package corner

import "image"

// Corners names the four corner codes of a tile using the fixed
// NW=A, NE=B, SW=C, SE=D layout.
type Corners struct {
	A, B, C, D Code
}

// Tile is an immutable square raster tagged with its four corner
// codes. Edges are derived once at construction and never recomputed.
type Tile struct {
	Image   image.Image
	Corners Corners
	edges   [4]Edge
}

// NewTile derives a Tile's edges from its four corners and wraps img.
// Per §4.1: North=(a,b), East=(b,d), South=(c,d), West=(a,c).
func NewTile(img image.Image, a, b, c, d Code) *Tile {
	edges := [4]Edge{}
	edges[North] = Edge{a, b}
	edges[East] = Edge{b, d}
	edges[South] = Edge{c, d}
	edges[West] = Edge{a, c}

	return &Tile{
		Image:   img,
		Corners: Corners{A: a, B: b, C: c, D: d},
		edges:   edges,
	}
}

// Edge returns the corner pair along the given side.
func (t *Tile) Edge(dir Direction) Edge {
	return t.edges[dir]
}

// Dimensions returns the tile's pixel width and height.
func (t *Tile) Dimensions() (w, h int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// IsConnectable reports whether other may be placed to this tile's dir
// side: the corner pair this tile names on dir must equal the pair
// other names on the opposite side.
func (t *Tile) IsConnectable(dir Direction, other *Tile) bool {
	return t.edges[dir].Equal(other.edges[dir.Opposite()])
}
