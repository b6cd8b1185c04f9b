// Package tilebuilder turns four corner samples into the tile for one
// corner-code tuple. merge recombines the samples' opposite quadrants
// into a single seed image; Builder.Build inpaints that seed through the
// four-corner mask using the samples as unconstrained examples. A
// Builder caches both merge (BuildTest) and synthesis (Build) results so
// re-running a build only recomputes tuples that changed.
package tilebuilder
