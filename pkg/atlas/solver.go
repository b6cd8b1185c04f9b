package atlas

import (
	"fmt"

	"github.com/edwin0cheng/omega-tile/pkg/corner"
	"github.com/edwin0cheng/omega-tile/pkg/rng"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Solve arranges tiles into an n*n grid, visiting cells in a fixed
// order — first the column x=0 top to bottom, then the row y=0 left to
// right excluding the origin, then the remaining (n-1)*(n-1) inner
// block in row-major order — and at each cell picking the first tile
// (from a full Fisher-Yates shuffle, seeded off seed) that is
// edge-compatible with every already-placed neighbour. There is no
// backtracking: if every candidate is rejected at some cell, Solve
// returns a wtileerr.Unsolvable error.
func Solve(tiles corner.TileSet, n int, seed uint64) (*Atlas, error) {
	if err := tiles.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, wtileerr.New(wtileerr.InvalidInput, "atlas size n must be positive")
	}

	w, h := tiles.Dimensions()
	cells := make(map[cellPos]placement, n*n)
	r := rng.NewSeeded(seed)

	order := traversalOrder(n)

	for _, pos := range order {
		candidates := shuffledIndices(len(tiles), r)

		placed := false
		for _, idx := range candidates {
			t := tiles[idx]
			if fit(pos.X, pos.Y, t, cells) {
				cells[pos] = placement{index: idx, tile: t}
				placed = true
				break
			}
		}
		if !placed {
			return nil, wtileerr.New(wtileerr.Unsolvable,
				fmt.Sprintf("no tile fits cell (%d,%d)", pos.X, pos.Y))
		}
	}

	return &Atlas{cells: cells, n: n, tileW: w, tileH: h, seed: seed}, nil
}

// traversalOrder returns the solver's cell visiting order for an n*n
// grid: the first column, then the first row past the origin, then
// the inner block in row-major order.
func traversalOrder(n int) []cellPos {
	order := make([]cellPos, 0, n*n)

	for y := 0; y < n; y++ {
		order = append(order, cellPos{X: 0, Y: y})
	}
	for x := 1; x < n; x++ {
		order = append(order, cellPos{X: x, Y: 0})
	}
	for y := 1; y < n; y++ {
		for x := 1; x < n; x++ {
			order = append(order, cellPos{X: x, Y: y})
		}
	}
	return order
}

func shuffledIndices(n int, r *rng.RNG) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}
