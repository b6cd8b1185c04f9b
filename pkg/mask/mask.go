package mask

import (
	"image"
	"image/color"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Build returns a (w,h) RGBA mask: fully transparent except for four
// filled discs of radius w/2 centred at (0,0), (w,0), (0,h) and (w,h).
// Only the quarter of each disc that falls inside the canvas is drawn.
func Build(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	radius := w / 2

	for _, corner := range [4][2]int{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		fillDisc(img, corner[0], corner[1], radius)
	}
	return img
}

func fillDisc(img *image.RGBA, cx, cy, radius int) {
	bounds := img.Bounds()
	r2 := radius * radius

	minY := max(cy-radius, bounds.Min.Y)
	maxY := min(cy+radius, bounds.Max.Y-1)
	minX := max(cx-radius, bounds.Min.X)
	maxX := min(cx+radius, bounds.Max.X-1)

	for y := minY; y <= maxY; y++ {
		dy := y - cy
		for x := minX; x <= maxX; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, white)
			}
		}
	}
}
