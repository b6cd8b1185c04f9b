// Package mask builds the four-corner "star" inpainting mask used when
// synthesising a tile: a fully transparent canvas with four filled
// white discs of radius w/2 centred at the tile's four corners. The
// union of the discs is the region the synthesiser samples from the
// merged seed image directly; the uncovered centre is what it actually
// synthesises.
package mask
