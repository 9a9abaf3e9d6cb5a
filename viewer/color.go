package viewer

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBackground is the default clear color behind both panels.
	ColorBackground = Color{R: 15.0 / 255, G: 15.0 / 255, B: 20.0 / 255, A: 1}
	// ColorWindow outlines the kernel window over the input.
	ColorWindow = Color{1, 1, 1, 220.0 / 255}
	// ColorGrid draws the cell lines inside the kernel window.
	ColorGrid = Color{1, 1, 1, 90.0 / 255}
	// ColorFrame outlines the output panel.
	ColorFrame = Color{1, 160.0 / 255, 160.0 / 255, 1}
	// ColorCursor marks the output cell written next.
	ColorCursor = Color{1, 220.0 / 255, 80.0 / 255, 1}
)

// RGBA8 converts c to a premultiplied color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
