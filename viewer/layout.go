package viewer

import "image"

const (
	panelMargin = 16
	hudLines    = 4
	hudLineH    = 16
)

// layout places the input panel on the left and the output panel on the
// right, both at the input's scaled size, with the HUD text underneath.
type layout struct {
	scale   int
	input   image.Rectangle
	output  image.Rectangle
	hud     image.Point
	screenW int
	screenH int
}

func computeLayout(inW, inH, scale int) layout {
	if scale < 1 {
		scale = 1
	}
	pw, ph := inW*scale, inH*scale
	in := image.Rect(panelMargin, panelMargin, panelMargin+pw, panelMargin+ph)
	out := in.Add(image.Pt(pw+panelMargin, 0))
	return layout{
		scale:   scale,
		input:   in,
		output:  out,
		hud:     image.Pt(panelMargin, in.Max.Y+panelMargin/2),
		screenW: out.Max.X + panelMargin,
		screenH: in.Max.Y + panelMargin + hudLines*hudLineH,
	}
}

// outputCell returns the screen rectangle covered by output cell p when an
// outW x outH raster is stretched over the output panel.
func (l layout) outputCell(p image.Point, outW, outH int) (x, y, w, h float64) {
	cw := float64(l.output.Dx()) / float64(outW)
	ch := float64(l.output.Dy()) / float64(outH)
	return float64(l.output.Min.X) + float64(p.X)*cw, float64(l.output.Min.Y) + float64(p.Y)*ch, cw, ch
}
