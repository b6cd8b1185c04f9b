package wtile

import (
	"image"

	"github.com/edwin0cheng/omega-tile/pkg/atlas"
	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/corner"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/sample"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
	"github.com/edwin0cheng/omega-tile/pkg/tilebuilder"
	"github.com/edwin0cheng/omega-tile/pkg/variation"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// BuildFromImage derives the four corner samples from path under mode,
// then synthesises one tile per tuple of v. It returns the resulting
// TileSet alongside the four samples it was built from (callers that
// only want the set may ignore the second value). Progress for both
// the "build sample" and "build tile" stages is reported to reporter.
func BuildFromImage(mode sample.Mode, path string, v variation.Variation, engine synthengine.Engine, c *cache.Cache, reporter progress.Reporter) (corner.TileSet, [4]image.Image, error) {
	samplesObs := reporter.BeginStage("build sample")
	samples, err := sample.Build(mode, path, engine, c, samplesObs)
	if err != nil {
		return nil, samples, wtileerr.Context("fail to build samples", err)
	}

	set, err := tilebuilder.BuildSet(v, samples, path, engine, c, reporter)
	if err != nil {
		return nil, samples, wtileerr.Context("fail to build tile set", err)
	}
	return set, samples, nil
}

// BuildTestSet builds a TileSet over four fixed solid-colour samples,
// skipping synthesis entirely. It exists to exercise variation
// enumeration and atlas solving without a texture-synthesis engine.
func BuildTestSet(v variation.Variation, reporter progress.Reporter, c *cache.Cache) (corner.TileSet, error) {
	set, err := tilebuilder.BuildTestSet(v, reporter, c)
	if err != nil {
		return nil, wtileerr.Context("fail to build test tile set", err)
	}
	return set, nil
}

// BuildAtlas solves an n*n constraint-satisfaction layout over tiles,
// seeded by seed.
func BuildAtlas(tiles corner.TileSet, n int, seed uint64) (*atlas.Atlas, error) {
	return atlas.Solve(tiles, n, seed)
}

// RenderCombined blits a's cells into one (n*w, n*h) image.
func RenderCombined(a *atlas.Atlas) (image.Image, error) {
	return atlas.RenderCombined(a)
}

// RenderIndices produces an n*n grayscale image whose pixel values are
// tile indices. Only meaningful for tile sets of at most 256 tiles.
func RenderIndices(a *atlas.Atlas) (*image.Gray, error) {
	return atlas.RenderIndices(a)
}
