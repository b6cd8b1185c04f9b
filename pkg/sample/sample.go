package sample

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Mode selects how the four corner samples are derived from an input
// texture.
type Mode int

const (
	// Generate runs the synthesis engine four times, once per sample
	// id, each seeded off that id.
	Generate Mode = iota
	// Split treats the input as already twice the tile size and slices
	// it into four quadrants.
	Split
)

// subImager is satisfied by every concrete image type png.Decode can
// return; it is how a quadrant crop is taken without copying pixels.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Build derives the four corner samples for path under mode, reporting
// progress to obs (Generate mode only issues updates; Split is
// synchronous). Samples are returned in stable order [id0, id1, id2,
// id3].
func Build(mode Mode, path string, eng synthengine.Engine, c *cache.Cache, obs progress.Observer) ([4]image.Image, error) {
	switch mode {
	case Split:
		return buildSplit(path)
	case Generate:
		return buildGenerate(path, eng, c, obs)
	default:
		return [4]image.Image{}, wtileerr.New(wtileerr.InvalidInput, "unknown sample mode")
	}
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wtileerr.Wrap(wtileerr.IO, "fail to open input texture", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, wtileerr.Wrap(wtileerr.IO, "fail to decode input texture", err)
	}
	return img, nil
}

func buildSplit(path string) ([4]image.Image, error) {
	var out [4]image.Image

	img, err := loadPNG(path)
	if err != nil {
		return out, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || w != h || w%2 != 0 {
		return out, wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("split-mode texture must be square and even, got %dx%d", w, h))
	}

	si, ok := img.(subImager)
	if !ok {
		return out, wtileerr.New(wtileerr.InvalidInput, "input texture does not support cropping")
	}

	half := w / 2
	x0, y0 := b.Min.X, b.Min.Y
	out[0] = si.SubImage(image.Rect(x0, y0, x0+half, y0+half))
	out[1] = si.SubImage(image.Rect(x0, y0+half, x0+half, y0+half+half))
	out[2] = si.SubImage(image.Rect(x0+half, y0, x0+half+half, y0+half))
	out[3] = si.SubImage(image.Rect(x0+half, y0+half, x0+half+half, y0+half+half))
	return out, nil
}

func buildGenerate(path string, eng synthengine.Engine, c *cache.Cache, obs progress.Observer) ([4]image.Image, error) {
	var out [4]image.Image

	img, err := loadPNG(path)
	if err != nil {
		return out, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for id := 1; id <= 4; id++ {
		key := fmt.Sprintf("%d+%d+%s+%d+samples", w, h, path, id)

		if cached, ok := c.Get(key); ok {
			out[id-1] = cached
			continue
		}

		req := synthengine.Request{
			Examples: []image.Image{img},
			Output:   synthengine.Dims{W: w, H: h},
			Seed:     uint64(id),
		}
		generated, err := eng.Run(req, obs)
		if err != nil {
			return out, wtileerr.Wrap(wtileerr.Synthesis, "fail to synthesise sample", err)
		}

		if err := c.Put(key, generated); err != nil {
			return out, err
		}
		out[id-1] = generated
	}
	return out, nil
}
