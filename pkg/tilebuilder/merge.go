package tilebuilder

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/edwin0cheng/omega-tile/pkg/corner"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// merge recombines samples into one seed image for the tuple (a,b,c,d):
//
//	*-----------*
//	|  A  |  B  |
//	*-----------*
//	|  C  |  D  |
//	*-----------*
//
// Each quadrant of the result is filled from the *opposite* quadrant of
// its corresponding sample — the top-left quadrant of the result comes
// from sample a's bottom-right quadrant, and so on — so that each
// sample's centre lands on a corner of the result and the seams between
// the four quadrants run along the result's mid-lines.
func merge(samples [4]image.Image, a, b, c, d corner.Code) (image.Image, error) {
	b0 := samples[0].Bounds()
	w, h := b0.Dx(), b0.Dy()
	for i, s := range samples {
		if sb := s.Bounds(); sb.Dx() != w || sb.Dy() != h {
			return nil, wtileerr.New(wtileerr.SizeMismatch,
				fmt.Sprintf("sample %d is %dx%d, want %dx%d", i, sb.Dx(), sb.Dy(), w, h))
		}
	}

	w2, h2 := w/2, h/2
	res := image.NewNRGBA(image.Rect(0, 0, w, h))

	sA, sB, sC, sD := samples[a], samples[b], samples[c], samples[d]
	oA, oB, oC, oD := sA.Bounds().Min, sB.Bounds().Min, sC.Bounds().Min, sD.Bounds().Min

	draw.Draw(res, image.Rect(0, 0, w2, h2), sA, image.Pt(oA.X+w2, oA.Y+h2), draw.Src)
	draw.Draw(res, image.Rect(w2, 0, w, h2), sB, image.Pt(oB.X, oB.Y+h2), draw.Src)
	draw.Draw(res, image.Rect(0, h2, w2, h), sC, image.Pt(oC.X+w2, oC.Y), draw.Src)
	draw.Draw(res, image.Rect(w2, h2, w, h), sD, image.Pt(oD.X, oD.Y), draw.Src)

	return res, nil
}
