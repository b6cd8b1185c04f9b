// Package sample derives the four corner samples a tile set is built
// from. In Generate mode each sample is an independent synthesis run
// seeded off its own id, sourced from one input texture. In Split mode
// the four samples are simply the four quadrants of an input texture
// that is already twice the tile size.
package sample
