package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideDuration is how long the kernel window takes to slide to a
// neighboring position, in seconds.
const glideDuration = 0.12

// windowGlide animates the on-screen kernel window toward the engine's
// current window. Short moves glide; jumps (row wrap, rebuild, reset) snap.
type windowGlide struct {
	x, y    float64
	target  image.Point
	tweenX  *gween.Tween
	tweenY  *gween.Tween
	started bool
}

// update retargets the glide at p (input coordinates) and advances the
// running tweens by dt seconds.
func (g *windowGlide) update(p image.Point, maxStep int, dt float32) {
	if !g.started {
		g.snap(p)
		g.started = true
		return
	}
	if p != g.target {
		d := p.Sub(g.target)
		if abs(d.X) > maxStep || abs(d.Y) > maxStep {
			g.snap(p)
			return
		}
		g.target = p
		g.tweenX = gween.New(float32(g.x), float32(p.X), glideDuration, ease.OutQuad)
		g.tweenY = gween.New(float32(g.y), float32(p.Y), glideDuration, ease.OutQuad)
	}
	if g.tweenX == nil {
		return
	}
	vx, doneX := g.tweenX.Update(dt)
	vy, doneY := g.tweenY.Update(dt)
	g.x, g.y = float64(vx), float64(vy)
	if doneX && doneY {
		g.tweenX, g.tweenY = nil, nil
		g.x, g.y = float64(g.target.X), float64(g.target.Y)
	}
}

func (g *windowGlide) snap(p image.Point) {
	g.target = p
	g.x, g.y = float64(p.X), float64(p.Y)
	g.tweenX, g.tweenY = nil, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawWindow outlines a k x k kernel window whose top-left corner sits at
// input coordinate (x, y), with grid lines between cells.
func drawWindow(dst *ebiten.Image, l layout, x, y float64, k int) {
	s := float64(l.scale)
	px := float64(l.input.Min.X) + x*s
	py := float64(l.input.Min.Y) + y*s
	size := float32(float64(k) * s)

	grid := ColorGrid.RGBA8()
	for i := 1; i < k; i++ {
		off := float32(float64(i) * s)
		vector.StrokeLine(dst, float32(px)+off, float32(py), float32(px)+off, float32(py)+size, 1, grid, false)
		vector.StrokeLine(dst, float32(px), float32(py)+off, float32(px)+size, float32(py)+off, 1, grid, false)
	}
	vector.StrokeRect(dst, float32(px), float32(py), size, size, 1, ColorWindow.RGBA8(), false)
}

// drawOutputCursor marks the output cell the next sample will be written to.
func drawOutputCursor(dst *ebiten.Image, l layout, p image.Point, outW, outH int) {
	x, y, w, h := l.outputCell(p, outW, outH)
	vector.StrokeRect(dst, float32(x), float32(y), float32(max(w, 2)), float32(max(h, 2)), 1, ColorCursor.RGBA8(), false)
}

// drawFrame outlines a panel.
func drawFrame(dst *ebiten.Image, r image.Rectangle) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, ColorFrame.RGBA8(), false)
}
