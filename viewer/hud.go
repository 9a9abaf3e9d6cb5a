package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/convscan"
)

// fpsRefresh is how often the FPS/TPS readout is recomputed, in seconds.
const fpsRefresh = 0.5

// hud renders the status text under the panels. The FPS/TPS readout is
// refreshed every fpsRefresh seconds so it stays legible.
type hud struct {
	showFPS    bool
	fpsText    string
	sinceFlush float64
}

func (h *hud) update(dt float64) {
	if !h.showFPS {
		return
	}
	h.sinceFlush += dt
	if h.fpsText != "" && h.sinceFlush < fpsRefresh {
		return
	}
	h.sinceFlush = 0
	h.fpsText = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (h *hud) draw(dst *ebiten.Image, l layout, e *convscan.Engine) {
	text := statusText(e)
	if h.showFPS {
		text += "\n" + h.fpsText
	}
	ebitenutil.DebugPrintAt(dst, text, l.hud.X, l.hud.Y)
}

// statusText summarizes the engine state in three lines.
func statusText(e *convscan.Engine) string {
	state := "playing"
	if !e.Playing() {
		state = "paused"
	}
	w, h := e.OutputSize()
	c := e.Cursor()
	return fmt.Sprintf(
		"%s  speed %d  pass %d  cursor (%d,%d) of %dx%d\n"+
			"kernel %dx%d  stride %d  padding %s  norm %s\n"+
			"[space] play  [->] step  [r] reset  [bksp] restart  [s] stride  [p] pad  [n] norm  [1-7] preset",
		state, e.Speed(), e.Passes(), c.X, c.Y, w, h,
		e.Kernel().Size(), e.Kernel().Size(), e.Stride(), e.Padding(), e.Normalization(),
	)
}
