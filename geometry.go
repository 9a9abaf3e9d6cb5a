package convscan

import (
	"fmt"
	"image"
)

// Geometry describes how a kernel is laid over the input raster. It is a
// plain value; the engine rebuilds its output raster whenever the geometry
// changes.
type Geometry struct {
	InputW, InputH int
	KernelSize     int
	Stride         int
	Padding        PaddingMode
}

// Pad returns the implicit zero border on each side of the input: 0 for
// PaddingValid, KernelSize/2 for PaddingSame.
func (g Geometry) Pad() int {
	if g.Padding == PaddingSame {
		return g.KernelSize / 2
	}
	return 0
}

// OutputSize returns floor((in - k + 2*pad)/stride) + 1 for both axes.
// Degenerate configurations produce non-positive values; nothing is clamped.
// A non-positive stride yields (0, 0).
func (g Geometry) OutputSize() (w, h int) {
	if g.Stride <= 0 {
		return 0, 0
	}
	pad := g.Pad()
	w = floorDiv(g.InputW-g.KernelSize+2*pad, g.Stride) + 1
	h = floorDiv(g.InputH-g.KernelSize+2*pad, g.Stride) + 1
	return w, h
}

// Validate reports ErrInvalidGeometry when the configuration cannot produce
// a raster with positive area.
func (g Geometry) Validate() error {
	if g.Stride <= 0 {
		return fmt.Errorf("%w: stride %d must be >= 1", ErrInvalidGeometry, g.Stride)
	}
	if g.KernelSize <= 0 {
		return fmt.Errorf("%w: kernel size %d must be >= 1", ErrInvalidGeometry, g.KernelSize)
	}
	if g.InputW <= 0 || g.InputH <= 0 {
		return fmt.Errorf("%w: empty input %dx%d", ErrInvalidGeometry, g.InputW, g.InputH)
	}
	w, h := g.OutputSize()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: kernel %d on %dx%d input (stride %d, padding %s) gives %dx%d output",
			ErrInvalidGeometry, g.KernelSize, g.InputW, g.InputH, g.Stride, g.Padding, w, h)
	}
	return nil
}

// Origin returns the input-space top-left corner of the window sampled for
// output coordinate p.
func (g Geometry) Origin(p image.Point) image.Point {
	pad := g.Pad()
	return image.Point{X: p.X*g.Stride - pad, Y: p.Y*g.Stride - pad}
}

// Window returns the KernelSize x KernelSize input-space rectangle sampled
// for output coordinate p. It may extend past the input bounds.
func (g Geometry) Window(p image.Point) image.Rectangle {
	o := g.Origin(p)
	return image.Rect(o.X, o.Y, o.X+g.KernelSize, o.Y+g.KernelSize)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
