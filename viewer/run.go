package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/convscan"
)

// DefaultScale is the on-screen size of one input pixel.
const DefaultScale = 3

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Scale is the on-screen size of one input pixel. Zero means DefaultScale.
	Scale int
	// ShowFPS adds an FPS/TPS readout to the HUD.
	ShowFPS bool
	// ShowHUD draws the status and key help text under the panels.
	ShowHUD bool
	// Debug logs rebuilds, actions and per-frame timings to stderr.
	Debug bool
	// ScreenshotDir receives screenshots. Empty means DefaultScreenshotDir.
	ScreenshotDir string
	// Script, when set, drives the viewer from a JSON test script.
	Script *TestRunner
	// ClearColor fills the background. The zero value means ColorBackground.
	ClearColor Color
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Title == "" {
		cfg.Title = "convscan"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = ColorBackground
	}
	return cfg
}

// Run opens a window sized to the engine's input and runs the game loop
// until the window is closed or a quit action is applied.
func Run(e *convscan.Engine, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	v := New(e, cfg)
	w, h := v.ScreenSize()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(v)
}
