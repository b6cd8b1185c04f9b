package synthengine

import (
	"image"

	"github.com/edwin0cheng/omega-tile/pkg/progress"
)

// Dims is a synthesis output's pixel width and height.
type Dims struct {
	W, H int
}

// InpaintExample restricts the engine to sampling example only within
// SampleMask, while Mask (on the surrounding Request) marks the region
// of the output that must be synthesised rather than copied directly.
type InpaintExample struct {
	Example    image.Image
	SampleMask image.Image
}

// Request is the session-builder input for one synthesis run.
type Request struct {
	// Examples are unconstrained sources the engine may sample from
	// anywhere.
	Examples []image.Image

	// Inpaint, when non-nil, adds an additional example that is only
	// sampled through its own SampleMask. Mask marks which pixels of
	// the output are inpainted (synthesised) rather than copied as-is
	// from the corresponding example pixel.
	Mask    image.Image
	Inpaint *InpaintExample

	// Output is the requested output size.
	Output Dims

	// Seed makes the run reproducible for a fixed engine version.
	Seed uint64
}

// Engine synthesises one output image per Request, reporting progress
// to obs (which may be progress.Null).
type Engine interface {
	Run(req Request, obs progress.Observer) (image.Image, error)
}
