package cache

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, col color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, col)
		}
	}
	return img
}

func TestCache_MissThenHit(t *testing.T) {
	c := Open(t.TempDir())

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	want := solidImage(4, 4, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if err := c.Put("k1", want); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("Get() missed an entry just written")
	}

	gb := got.Bounds()
	if gb.Dx() != 4 || gb.Dy() != 4 {
		t.Errorf("decoded image dims = %v, want 4x4", gb)
	}
	r, g, b, _ := got.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("decoded pixel = (%d,%d,%d), want (10,20,30)", r>>8, g>>8, b>>8)
	}
}

func TestCache_GetIgnoresCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := Open(dir)

	// Write garbage directly under the key's hashed filename.
	sum := c.pathFor("broken")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(sum, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := c.Get("broken"); ok {
		t.Fatal("Get() reported a hit for a corrupt PNG")
	}
}

func TestCache_Clear(t *testing.T) {
	dir := t.TempDir()
	c := Open(dir)

	if err := c.Put("a", solidImage(2, 2, color.White)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := c.Put("b", solidImage(2, 2, color.Black)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear()")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("entry survived Clear()")
	}
}

func TestCache_NilIsAlwaysMissAndPutIsANoop(t *testing.T) {
	var c *Cache

	if _, ok := c.Get("k"); ok {
		t.Fatal("nil *Cache reported a hit")
	}
	if err := c.Put("k", solidImage(2, 2, color.White)); err != nil {
		t.Fatalf("nil *Cache Put() returned an error, want no-op: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("nil *Cache Clear() returned an error, want no-op: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Fatal("nil *Cache reported a hit after Put")
	}
}

func TestCache_ClearMissingDirIsNotError(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := c.Clear(); err != nil {
		t.Errorf("Clear() on missing dir = %v, want nil", err)
	}
}
