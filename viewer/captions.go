package viewer

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/convscan"
)

const captionSize = 11

// captionFont is the TrueType face used for the panel titles.
type captionFont struct {
	face   *text.GoTextFace
	failed bool
}

func loadCaptionFace(ttfData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// draw writes the input and output titles just above their panels. The font
// is parsed on first use; a parse failure is logged once and captions are
// skipped from then on.
func (c *captionFont) draw(dst *ebiten.Image, l layout, e *convscan.Engine) {
	if c.failed {
		return
	}
	if c.face == nil {
		face, err := loadCaptionFace(goregular.TTF, captionSize)
		if err != nil {
			logf("captions: %v", err)
			c.failed = true
			return
		}
		c.face = face
	}
	in, out := captionText(e)
	c.drawAt(dst, in, l.input.Min)
	c.drawAt(dst, out, l.output.Min)
}

func (c *captionFont) drawAt(dst *ebiten.Image, s string, panel image.Point) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(panel.X), float64(panel.Y-2))
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(ColorFrame.RGBA8())
	text.Draw(dst, s, c.face, op)
}

// captionText returns the input and output panel titles.
func captionText(e *convscan.Engine) (in, out string) {
	b := e.Input().Bounds()
	w, h := e.OutputSize()
	in = fmt.Sprintf("input %dx%d", b.Dx(), b.Dy())
	out = fmt.Sprintf("output %dx%d  %s", w, h, e.Normalization())
	return in, out
}
