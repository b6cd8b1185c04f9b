package corner

import (
	"fmt"

	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// TileSet is an ordered sequence of tiles. A tile's position within the
// sequence is its stable id, referenced by index elsewhere (atlas
// cells, rendered indices images).
type TileSet []*Tile

// Validate checks the non-empty and uniform-dimensions invariants.
func (ts TileSet) Validate() error {
	if len(ts) == 0 {
		return wtileerr.New(wtileerr.InvalidInput, "tile set is empty")
	}

	w, h := ts[0].Dimensions()
	if w != h {
		return wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("tile dimensions must be square, got %dx%d", w, h))
	}
	if w%2 != 0 {
		return wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("tile dimension must be even, got %d", w))
	}

	for i, t := range ts[1:] {
		tw, th := t.Dimensions()
		if tw != w || th != h {
			return wtileerr.New(wtileerr.InvalidInput,
				fmt.Sprintf("tile %d has dimensions %dx%d, want %dx%d", i+1, tw, th, w, h))
		}
	}

	return nil
}

// Dimensions returns the shared (w, h) of every tile in the set. The
// caller must have validated the set first.
func (ts TileSet) Dimensions() (w, h int) {
	return ts[0].Dimensions()
}
