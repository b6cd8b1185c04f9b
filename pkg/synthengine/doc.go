// Package synthengine defines the boundary contract for the external
// patch-based texture-synthesis engine the pipeline treats as opaque.
// Everything upstream (sample derivation, tile building) only ever
// talks to the Engine interface; swapping the actual inpainting
// implementation never touches this module.
//
// A Request bundles the engine's session-builder inputs: the example
// images to source patches from, an optional inpaint example restricted
// to a mask, the desired output size, and a seed. Engine.Run is the
// "run(progress_sink) -> image" half of that contract.
package synthengine
