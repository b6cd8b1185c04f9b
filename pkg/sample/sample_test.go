package sample

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
)

func writeTestPNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// quadImage paints each quadrant of a 4x4 image a distinct solid colour
// so that split output can be checked by sampling one pixel.
func quadImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	quadrants := []struct {
		r      image.Rectangle
		colour color.NRGBA
	}{
		{image.Rect(0, 0, 2, 2), color.NRGBA{255, 0, 0, 255}},
		{image.Rect(0, 2, 2, 4), color.NRGBA{0, 255, 0, 255}},
		{image.Rect(2, 0, 4, 2), color.NRGBA{0, 0, 255, 255}},
		{image.Rect(2, 2, 4, 4), color.NRGBA{255, 255, 0, 255}},
	}
	for _, q := range quadrants {
		for y := q.r.Min.Y; y < q.r.Max.Y; y++ {
			for x := q.r.Min.X; x < q.r.Max.X; x++ {
				img.SetNRGBA(x, y, q.colour)
			}
		}
	}
	return img
}

func TestBuild_Split_ExtractsQuadrants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, quadImage())

	out, err := Build(Split, path, nil, nil, progress.Null.BeginStage("samples"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []color.NRGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {255, 255, 0, 255},
	}
	for i, img := range out {
		if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
			t.Errorf("sample %d size = %v, want 2x2", i, b)
		}
		r, g, b, a := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
		got := color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		if got != want[i] {
			t.Errorf("sample %d colour = %v, want %v", i, got, want[i])
		}
	}
}

func TestBuild_Split_RejectsNonSquare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, image.NewNRGBA(image.Rect(0, 0, 4, 2)))

	_, err := Build(Split, path, nil, nil, progress.Null.BeginStage("samples"))
	if err == nil {
		t.Fatal("expected error for non-square input")
	}
}

func TestBuild_Split_RejectsOddDimension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, image.NewNRGBA(image.Rect(0, 0, 3, 3)))

	_, err := Build(Split, path, nil, nil, progress.Null.BeginStage("samples"))
	if err == nil {
		t.Fatal("expected error for odd-sized input")
	}
}

type fakeEngine struct {
	calls int
	err   error
	img   image.Image
}

func (f *fakeEngine) Run(req synthengine.Request, obs progress.Observer) (image.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func TestBuild_Generate_CachesPerID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	c := cache.Open(filepath.Join(dir, "cache"))
	eng := &fakeEngine{img: image.NewNRGBA(image.Rect(0, 0, 4, 4))}

	if _, err := Build(Generate, path, eng, c, progress.Null.BeginStage("samples")); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if eng.calls != 4 {
		t.Fatalf("calls = %d, want 4", eng.calls)
	}

	// A second run with the same cache must hit every entry and never
	// call the engine again.
	if _, err := Build(Generate, path, eng, c, progress.Null.BeginStage("samples")); err != nil {
		t.Fatalf("second Build: %v", err)
	}
	if eng.calls != 4 {
		t.Fatalf("calls after cache hit = %d, want still 4", eng.calls)
	}
}

// reportingEngine emits a monotone Update sequence on every Run call,
// as a real synthesiser reporting inpainting progress would.
type reportingEngine struct {
	img image.Image
}

func (e *reportingEngine) Run(req synthengine.Request, obs progress.Observer) (image.Image, error) {
	for i := 1; i <= 3; i++ {
		obs.Update(progress.Update{
			StageName: "build sample",
			Stage:     progress.Counter{Current: i, Total: 3},
			Total:     progress.Counter{Current: i, Total: 3},
		})
	}
	return e.img, nil
}

func TestBuild_Generate_ReportsMonotoneProgress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	c := cache.Open(filepath.Join(dir, "cache"))
	eng := &reportingEngine{img: image.NewNRGBA(image.Rect(0, 0, 4, 4))}
	rec := progress.NewRecorder()

	if _, err := Build(Generate, path, eng, c, rec.BeginStage("build sample")); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !rec.Monotone() {
		t.Fatal("recorded updates were not monotone")
	}
	if len(rec.Updates["build sample"]) != 4*3 {
		t.Fatalf("recorded %d updates, want %d (4 samples x 3 updates each)", len(rec.Updates["build sample"]), 4*3)
	}
}

func TestBuild_Generate_PropagatesEngineError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writeTestPNG(t, path, image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	c := cache.Open(filepath.Join(dir, "cache"))
	eng := &fakeEngine{err: errors.New("synthesis boom")}

	_, err := Build(Generate, path, eng, c, progress.Null.BeginStage("samples"))
	if err == nil {
		t.Fatal("expected error to propagate")
	}
}
