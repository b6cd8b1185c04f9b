// Package export renders a solved atlas as an SVG debug visualization:
// a grid of cells, each split into its four corner-code colour
// swatches, so edge compatibility between neighbours can be checked by
// eye. It exists alongside the PNG renderings in pkg/atlas for the one
// case those can't serve — seeing the corner codes, not the
// synthesised pixels, at a glance.
package export
