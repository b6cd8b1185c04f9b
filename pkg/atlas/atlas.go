package atlas

import (
	"github.com/edwin0cheng/omega-tile/pkg/corner"
)

type cellPos struct {
	X, Y int
}

type placement struct {
	index int
	tile  *corner.Tile
}

// Atlas is a solved n*n arrangement of tiles. It stores tile indices
// into the originating TileSet rather than the tiles themselves, so it
// never needs to reference the set that produced it.
type Atlas struct {
	cells        map[cellPos]placement
	n            int
	tileW, tileH int
	seed         uint64
}

// Size returns the atlas's edge length n.
func (a *Atlas) Size() int { return a.n }

// Seed returns the RNG seed the solve was run with.
func (a *Atlas) Seed() uint64 { return a.seed }

// TileDimensions returns the pixel width and height shared by every
// tile in the atlas.
func (a *Atlas) TileDimensions() (w, h int) { return a.tileW, a.tileH }

// Dimensions returns the combined-render pixel width and height:
// n*tileW by n*tileH.
func (a *Atlas) Dimensions() (w, h int) { return a.n * a.tileW, a.n * a.tileH }

// At returns the tile index and tile placed at (x,y), or ok=false if
// (x,y) is outside the solved grid.
func (a *Atlas) At(x, y int) (index int, tile *corner.Tile, ok bool) {
	p, found := a.cells[cellPos{X: x, Y: y}]
	if !found {
		return 0, nil, false
	}
	return p.index, p.tile, true
}

func fit(x, y int, t *corner.Tile, cells map[cellPos]placement) bool {
	neighbours := [4]struct {
		dir    corner.Direction
		dx, dy int
	}{
		{corner.North, 0, -1},
		{corner.South, 0, 1},
		{corner.East, 1, 0},
		{corner.West, -1, 0},
	}

	for _, nb := range neighbours {
		other, ok := cells[cellPos{X: x + nb.dx, Y: y + nb.dy}]
		if !ok {
			continue
		}
		if !t.IsConnectable(nb.dir, other.tile) {
			return false
		}
	}
	return true
}
