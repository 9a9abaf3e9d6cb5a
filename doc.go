// Package convscan steps a 2D convolution kernel across an image one output
// sample at a time, so the scan can be watched and paused.
//
// An [Engine] owns the input raster, the kernel, the stride and padding
// geometry, and an output raster that fills in row-major order as the
// cursor advances. Each sample is the luminance of the kernel-weighted sum
// of the RGB pixels under the window, normalized to 0..255 by one of three
// [Normalization] modes.
//
// # Quick start
//
//	e, err := convscan.New(nil, convscan.DefaultConfig()) // synthetic pattern
//	if err != nil {
//		log.Fatal(err)
//	}
//	for range 100 {
//		e.Tick()
//	}
//	png.Encode(w, e.Output())
//
// The engine has no rendering dependency. Package viewer hosts it inside an
// Ebitengine window with keyboard controls, a gliding window overlay, and a
// scriptable test runner.
//
// # Geometry
//
// Output size is floor((in - k + 2*pad) / stride) + 1 per axis, with pad = 0
// for [PaddingValid] and k/2 for [PaddingSame]. Pixels outside the input read
// as black. Configuration changes that alter the geometry rebuild the output
// raster and rewind the cursor; a change that would leave the output empty
// is rejected with [ErrInvalidGeometry] and the engine keeps its old state.
//
// # Debug mode
//
// [Engine.SetDebugMode] logs rebuilds and completed passes to stderr.
package convscan
