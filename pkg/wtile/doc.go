// Package wtile is the system's public entry point: it wires sample
// derivation, tile synthesis and atlas solving into the five
// operations a caller actually needs — BuildFromImage, BuildTestSet,
// BuildAtlas, RenderCombined and RenderIndices — so that nothing
// outside this package needs to know about cache keys, mask
// construction or the solver's traversal order.
package wtile
