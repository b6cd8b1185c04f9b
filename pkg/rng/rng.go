package rng

import "math/rand"

// RNG is a deterministic source of randomness for one atlas solve. All
// methods are deterministic given the same initial seed.
type RNG struct {
	seed   uint64
	source *rand.Rand
}

// NewSeeded wraps seed directly with no derivation. The returned RNG's
// Seed() is seed itself — the atlas solver's build_atlas(tiles, n, seed)
// contract (spec invariant: determinism) requires placement to be a
// pure function of seed alone, so no stage/config hashing happens here.
func NewSeeded(seed uint64) *RNG {
	return &RNG{
		seed:   seed,
		source: rand.New(rand.NewSource(int64(seed))),
	}
}

// Seed returns the seed this RNG was constructed with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Shuffle pseudo-randomizes the order of elements in slice.
// The shuffle is deterministic based on the RNG's seed.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}
