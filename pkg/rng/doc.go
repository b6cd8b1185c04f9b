// Package rng provides the atlas solver's deterministic randomness.
//
// NewSeeded wraps a caller-supplied seed with no derivation at all —
// the system's own contract names the seed as the sole reproducibility
// key, since the atlas solver's build_atlas(tiles, n, seed) must be a
// pure function of seed.
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own
// instance.
package rng
