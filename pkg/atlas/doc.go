// Package atlas solves the constraint-satisfaction layout that arranges
// a tile set into an n*n grid where every shared edge between
// neighbouring cells is colour-compatible, then renders the solved
// grid as pixels.
//
// Solve visits cells in a fixed, contract-bound order — never simple
// row-major — and at each cell shuffles the full candidate list with a
// seeded RNG before accepting the first tile that fits. There is no
// backtracking across already-placed cells: the V4/V16 families are
// constructed so that greedy forward search succeeds with overwhelming
// probability, and an unsatisfiable cell is reported as Unsolvable
// rather than causing the solver to retry earlier placements.
package atlas
