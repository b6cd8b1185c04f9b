package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/edwin0cheng/omega-tile/pkg/corner"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// RenderIndices produces an n*n grayscale image whose pixel (x,y) holds
// the tile index placed at cell (x,y). It is only meaningful for tile
// sets of at most 256 tiles; a larger index is reported as
// wtileerr.SizeMismatch rather than silently truncated.
func RenderIndices(a *Atlas) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, a.n, a.n))

	for y := 0; y < a.n; y++ {
		for x := 0; x < a.n; x++ {
			index, _, ok := a.At(x, y)
			if !ok {
				return nil, wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("atlas is not complete at (%d,%d)", x, y))
			}
			if index > 255 {
				return nil, wtileerr.New(wtileerr.SizeMismatch, fmt.Sprintf("tile index %d does not fit in a byte", index))
			}
			img.SetGray(x, y, color.Gray{Y: uint8(index)})
		}
	}
	return img, nil
}

// RenderCombined produces an (n*w, n*h) RGB image where each cell is
// blitted from the tile placed there.
func RenderCombined(a *Atlas) (image.Image, error) {
	w, h := a.Dimensions()
	res := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < a.n; y++ {
		for x := 0; x < a.n; x++ {
			_, t, ok := a.At(x, y)
			if !ok {
				return nil, wtileerr.New(wtileerr.InvalidInput, fmt.Sprintf("atlas is not complete at (%d,%d)", x, y))
			}
			tw, th := t.Dimensions()
			dst := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
			draw.Draw(res, dst, t.Image, t.Image.Bounds().Min, draw.Src)
		}
	}
	return res, nil
}

// RenderTileSet packs every tile of a set into a ceil(sqrt(|set|))
// square grid, row-major, leaving any leftover cells blank. It is a
// debug aid for viewing a whole tile set at a glance rather than a
// solved atlas.
func RenderTileSet(set corner.TileSet) (image.Image, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	tw, th := set.Dimensions()
	side := int(math.Ceil(math.Sqrt(float64(len(set)))))

	res := image.NewNRGBA(image.Rect(0, 0, side*tw, side*th))
	for i, t := range set {
		x, y := i%side, i/side
		dst := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
		draw.Draw(res, dst, t.Image, t.Image.Bounds().Min, draw.Src)
	}
	return res, nil
}
