package tilebuilder

import (
	"fmt"
	"image"

	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/mask"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
	"github.com/edwin0cheng/omega-tile/pkg/variation"
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Builder produces one tile image per corner-code tuple from a fixed
// set of four corner samples.
type Builder struct {
	samples [4]image.Image
	mask    *image.RGBA
	engine  synthengine.Engine
	cache   *cache.Cache
	v       variation.Variation
	base    string
}

// New returns a Builder over samples, deriving the inpainting mask from
// their (common) dimensions. base labels the samples in cache keys
// (typically the input texture's path); v is the variation being built
// under, since tiles from different variations never share a cache
// entry even for an identical tuple.
func New(samples [4]image.Image, v variation.Variation, base string, engine synthengine.Engine, c *cache.Cache) *Builder {
	bounds := samples[0].Bounds()
	return &Builder{
		samples: samples,
		mask:    mask.Build(bounds.Dx(), bounds.Dy()),
		engine:  engine,
		cache:   c,
		v:       v,
		base:    base,
	}
}

func (b *Builder) key(label string, t variation.Tuple) string {
	return fmt.Sprintf("%s+%s+%d+%d+%d+%d", b.v, label, int(t.A), int(t.B), int(t.C), int(t.D))
}

// Build synthesises the tile for tuple t, using the cache entry at
// key(base, t) when present. obs receives progress for the "build
// tile" stage.
func (b *Builder) Build(t variation.Tuple, obs progress.Observer) (image.Image, error) {
	key := b.key(b.base, t)
	if img, ok := b.cache.Get(key); ok {
		return img, nil
	}

	merged, err := merge(b.samples, t.A, t.B, t.C, t.D)
	if err != nil {
		return nil, err
	}

	req := synthengine.Request{
		Examples: sliceOf(b.samples),
		Mask:     b.mask,
		Inpaint: &synthengine.InpaintExample{
			Example:    merged,
			SampleMask: b.mask,
		},
		Output: synthengine.Dims{W: b.mask.Bounds().Dx(), H: b.mask.Bounds().Dy()},
	}

	img, err := b.engine.Run(req, obs)
	if err != nil {
		return nil, wtileerr.Wrap(wtileerr.Synthesis, "fail to synthesise tile", err)
	}

	if err := b.cache.Put(key, img); err != nil {
		return nil, err
	}
	return img, nil
}

// BuildTest returns the merged seed image directly, skipping
// synthesis entirely. It is cached under its own "test" label so it
// never collides with a real build for the same tuple.
func (b *Builder) BuildTest(t variation.Tuple) (image.Image, error) {
	key := b.key("test", t)
	if img, ok := b.cache.Get(key); ok {
		return img, nil
	}

	merged, err := merge(b.samples, t.A, t.B, t.C, t.D)
	if err != nil {
		return nil, err
	}

	if err := b.cache.Put(key, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func sliceOf(samples [4]image.Image) []image.Image {
	return []image.Image{samples[0], samples[1], samples[2], samples[3]}
}
