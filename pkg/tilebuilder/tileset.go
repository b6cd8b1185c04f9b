package tilebuilder

import (
	"fmt"
	"image"
	"image/color"

	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/corner"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
	"github.com/edwin0cheng/omega-tile/pkg/variation"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// BuildSet synthesises one tile per tuple of v, over the four corner
// samples, reporting progress under the "build tile" stage.
func BuildSet(v variation.Variation, samples [4]image.Image, base string, engine synthengine.Engine, c *cache.Cache, reporter progress.Reporter) (corner.TileSet, error) {
	tuples := variation.Tuples(v)
	b := New(samples, v, base, engine, c)
	obs := reporter.BeginStage("build tile")

	set := make(corner.TileSet, 0, len(tuples))
	for i, t := range tuples {
		obs.Update(progress.Update{
			StageName: "build tile",
			Stage:     progress.Counter{Current: i, Total: len(tuples)},
			Total:     progress.Counter{Current: i, Total: len(tuples)},
		})

		img, err := b.Build(t, obs)
		if err != nil {
			return nil, wtileerr.Context(fmt.Sprintf("fail to save tile %d", i), err)
		}
		set = append(set, corner.NewTile(img, t.A, t.B, t.C, t.D))
	}
	return set, nil
}

// BuildTestSet builds a tile set over four fixed solid-colour 128x128
// samples instead of real synthesis, for exercising the variation
// enumeration and atlas solver without a texture-synthesis engine.
func BuildTestSet(v variation.Variation, reporter progress.Reporter, c *cache.Cache) (corner.TileSet, error) {
	samples := [4]image.Image{
		solidImage(128, 128, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
		solidImage(128, 128, color.NRGBA{R: 0, G: 255, B: 0, A: 255}),
		solidImage(128, 128, color.NRGBA{R: 0, G: 0, B: 255, A: 255}),
		solidImage(128, 128, color.NRGBA{R: 128, G: 128, B: 128, A: 255}),
	}

	tuples := variation.Tuples(v)
	b := New(samples, v, "test", nil, c)

	set := make(corner.TileSet, 0, len(tuples))
	for i, t := range tuples {
		img, err := b.BuildTest(t)
		if err != nil {
			return nil, wtileerr.Context(fmt.Sprintf("fail to save tile %d", i), err)
		}
		set = append(set, corner.NewTile(img, t.A, t.B, t.C, t.D))
	}
	return set, nil
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
