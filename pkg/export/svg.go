package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/edwin0cheng/omega-tile/pkg/atlas"
	"github.com/edwin0cheng/omega-tile/pkg/corner"
)

// SVGOptions configures the atlas debug-visualization export.
type SVGOptions struct {
	CellSize   int    // Pixel size of one grid cell's square (default: 40)
	ShowLabels bool   // Show each cell's tile index
	ShowLegend bool   // Show the corner-code colour legend
	Margin     int    // Canvas margin in pixels (default: 30)
	Title      string // Optional title for the visualization
	ShowStats  bool   // Show atlas size, tile dimensions and seed
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   40,
		ShowLabels: true,
		ShowLegend: true,
		Margin:     30,
		Title:      "Tile Atlas",
		ShowStats:  true,
	}
}

// ExportSVG renders a solved Atlas as a grid of colour swatches, one
// per corner, so edge compatibility between neighbouring cells can be
// checked by eye: adjacent cells must show matching colours along
// their shared side.
func ExportSVG(a *atlas.Atlas, opts SVGOptions) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("atlas cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 40
	}
	if opts.Margin <= 0 {
		opts.Margin = 30
	}

	n := a.Size()
	headerH := 0
	if opts.Title != "" || opts.ShowStats {
		headerH = 50
	}
	legendW := 0
	if opts.ShowLegend {
		legendW = 160
	}

	gridW := n * opts.CellSize
	gridH := n * opts.CellSize
	width := gridW + 2*opts.Margin + legendW
	height := gridH + 2*opts.Margin + headerH

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if headerH > 0 {
		drawAtlasHeader(canvas, a, opts, width)
	}

	originX, originY := opts.Margin, opts.Margin+headerH
	drawAtlasCells(canvas, a, opts, originX, originY)

	if opts.ShowLegend {
		drawCornerLegend(canvas, originX+gridW+30, originY)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders a and writes it to filepath with 0644
// permissions.
func SaveSVGToFile(a *atlas.Atlas, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(a, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0o644)
}

// cornerColor maps a corner code to the fixed debug colour used
// throughout the legend and the cell swatches, independent of whatever
// colour the tile's own synthesised pixels happen to be.
func cornerColor(c corner.Code) string {
	switch c {
	case corner.R:
		return "#ef4444"
	case corner.G:
		return "#22c55e"
	case corner.B:
		return "#3b82f6"
	case corner.Y:
		return "#eab308"
	default:
		return "#718096"
	}
}

func drawAtlasCells(canvas *svg.SVG, a *atlas.Atlas, opts SVGOptions, originX, originY int) {
	half := opts.CellSize / 2

	for y := 0; y < a.Size(); y++ {
		for x := 0; x < a.Size(); x++ {
			index, tile, ok := a.At(x, y)
			if !ok {
				continue
			}

			cx, cy := originX+x*opts.CellSize, originY+y*opts.CellSize

			// Four corner swatches in NW/NE/SW/SE order, matching the
			// fixed A/B/C/D layout.
			canvas.Rect(cx, cy, half, half, fmt.Sprintf("fill:%s", cornerColor(tile.Corners.A)))
			canvas.Rect(cx+half, cy, half, half, fmt.Sprintf("fill:%s", cornerColor(tile.Corners.B)))
			canvas.Rect(cx, cy+half, half, half, fmt.Sprintf("fill:%s", cornerColor(tile.Corners.C)))
			canvas.Rect(cx+half, cy+half, half, half, fmt.Sprintf("fill:%s", cornerColor(tile.Corners.D)))

			canvas.Rect(cx, cy, opts.CellSize, opts.CellSize, "fill:none;stroke:#1a1a2e;stroke-width:1")

			if opts.ShowLabels {
				canvas.Text(cx+half, cy+half+4, fmt.Sprintf("%d", index),
					"text-anchor:middle;font-size:10px;font-family:monospace;fill:#e2e8f0")
			}
		}
	}
}

func drawCornerLegend(canvas *svg.SVG, x, y int) {
	canvas.Text(x, y, "Corner codes", "font-size:13px;font-weight:bold;fill:#e2e8f0")

	entries := []struct {
		name string
		c    corner.Code
	}{
		{"R", corner.R}, {"G", corner.G}, {"B", corner.B}, {"Y", corner.Y},
	}

	rowY := y + 22
	for _, e := range entries {
		canvas.Rect(x, rowY-10, 14, 14, fmt.Sprintf("fill:%s", cornerColor(e.c)))
		canvas.Text(x+22, rowY, e.name, "font-size:12px;fill:#cbd5e0")
		rowY += 20
	}
}

func drawAtlasHeader(canvas *svg.SVG, a *atlas.Atlas, opts SVGOptions, width int) {
	y := 22
	if opts.Title != "" {
		canvas.Text(width/2, y, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		y += 22
	}
	if opts.ShowStats {
		w, h := a.TileDimensions()
		stats := fmt.Sprintf("n=%d | tile=%dx%d | seed=%d", a.Size(), w, h, a.Seed())
		canvas.Text(width/2, y, stats,
			"text-anchor:middle;font-size:11px;fill:#a0aec0;font-family:monospace")
	}
}
