package viewer

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/convscan"
)

// Viewer is an ebiten.Game that drives a convscan.Engine once per tick and
// draws the input and output rasters side by side.
//
// Use Run for a ready-made window, or embed a Viewer in your own game and
// forward Update, Draw and Layout.
type Viewer struct {
	engine *convscan.Engine
	layout layout

	// ClearColor fills the screen before the panels are drawn.
	ClearColor Color

	inputImg  *ebiten.Image
	outputImg *ebiten.Image
	outputSrc *image.RGBA // raster currently backing outputImg
	dirty     bool        // samples written since the last upload

	glide    windowGlide
	hud      hud
	captions captionFont
	showHUD  bool

	actionBuf   []Action
	injectQueue []Action
	testRunner  *TestRunner
	quit        bool

	screenshotQueue []string
	screenshotDir   string

	debug       bool
	stats       frameStats
	lastSamples int
	lastTick    time.Duration
}

// New creates a viewer for e. Ebitengine images are allocated lazily on the
// first Draw.
func New(e *convscan.Engine, cfg RunConfig) *Viewer {
	cfg = cfg.withDefaults()
	in := e.Input().Bounds()
	v := &Viewer{
		engine:        e,
		layout:        computeLayout(in.Dx(), in.Dy(), cfg.Scale),
		ClearColor:    cfg.ClearColor,
		hud:           hud{showFPS: cfg.ShowFPS},
		showHUD:       cfg.ShowHUD,
		testRunner:    cfg.Script,
		screenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
		dirty:         true,
	}
	e.SetDebugMode(cfg.Debug)
	return v
}

// Engine returns the engine driven by the viewer.
func (v *Viewer) Engine() *convscan.Engine {
	return v.engine
}

// ScreenSize returns the window size the layout needs.
func (v *Viewer) ScreenSize() (w, h int) {
	return v.layout.screenW, v.layout.screenH
}

// SetTestRunner attaches a TestRunner. Its step is called from Update before
// injected and keyboard actions each frame.
func (v *Viewer) SetTestRunner(r *TestRunner) {
	v.testRunner = r
}

// Update applies scripted, injected and keyboard actions, then ticks the
// engine. It returns ebiten.Termination once a quit action has been applied.
func (v *Viewer) Update() error {
	v.actionBuf = pollActions(v.actionBuf[:0])
	return v.update(v.actionBuf, 1.0/float64(ebiten.TPS()))
}

// update is Update without keyboard polling so it can run headless.
func (v *Viewer) update(keys []Action, dt float64) error {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	if a, ok := v.popInjected(); ok {
		v.apply(a)
	}
	for _, a := range keys {
		v.apply(a)
	}
	if v.quit {
		if v.debug {
			v.stats.flush()
		}
		return ebiten.Termination
	}

	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}
	n := v.engine.Tick()
	if v.debug {
		v.lastTick = time.Since(t0)
		v.lastSamples = n
	}
	if n > 0 {
		v.dirty = true
	}

	// Moves longer than one tick's worth of samples are wraps or rebuilds.
	maxStep := (v.engine.Speed() + 1) * v.engine.Stride()
	v.glide.update(v.engine.Window().Min, maxStep, float32(dt))
	v.hud.update(dt)
	return nil
}

// apply performs a on the viewer or its engine. Engine errors such as a
// stride too large for the input are logged and leave the engine unchanged.
func (v *Viewer) apply(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionScreenshot:
		v.Screenshot("manual")
		return
	case ActionQuit:
		v.quit = true
		return
	}
	if err := applyEngineAction(v.engine, a); err != nil {
		logf("%s: %v", a, err)
		return
	}
	// Any engine action may have written samples or rebuilt the raster.
	v.dirty = true
	if v.debug {
		logf("action %s", a)
	}
}

// Draw uploads the output raster if it changed and renders both panels,
// the kernel window overlay, and the HUD.
func (v *Viewer) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}
	uploaded := v.syncImages()
	var uploadTime time.Duration
	if v.debug {
		uploadTime = time.Since(t0)
	}

	screen.Fill(v.ClearColor.RGBA8())
	l := v.layout

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(float64(l.scale), float64(l.scale))
	op.GeoM.Translate(float64(l.input.Min.X), float64(l.input.Min.Y))
	screen.DrawImage(v.inputImg, &op)

	outW, outH := v.engine.OutputSize()
	op.GeoM.Reset()
	op.GeoM.Scale(float64(l.output.Dx())/float64(outW), float64(l.output.Dy())/float64(outH))
	op.GeoM.Translate(float64(l.output.Min.X), float64(l.output.Min.Y))
	screen.DrawImage(v.outputImg, &op)

	drawWindow(screen, l, v.glide.x, v.glide.y, v.engine.Kernel().Size())
	drawOutputCursor(screen, l, v.engine.Cursor(), outW, outH)
	drawFrame(screen, l.output)

	if v.showHUD {
		v.captions.draw(screen, l, v.engine)
		v.hud.draw(screen, l, v.engine)
	}

	if v.debug {
		if !uploaded {
			uploadTime = 0
		}
		if v.stats.add(v.lastSamples, v.lastTick, uploadTime, time.Since(t0)) {
			v.stats.flush()
		}
		v.lastSamples, v.lastTick = 0, 0
	}

	v.flushScreenshots(screen)
}

// Layout returns the fixed screen size computed from the input raster.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.layout.screenW, v.layout.screenH
}

// syncImages allocates the Ebitengine images on first use, reallocates the
// output image after a rebuild, and uploads the output raster when samples
// were written. It reports whether an upload happened.
func (v *Viewer) syncImages() bool {
	if v.inputImg == nil {
		v.inputImg = ebiten.NewImageFromImage(v.engine.Input())
	}
	out := v.engine.Output()
	if out != v.outputSrc {
		if v.outputImg != nil {
			v.outputImg.Deallocate()
		}
		b := out.Bounds()
		v.outputImg = ebiten.NewImage(b.Dx(), b.Dy())
		v.outputSrc = out
		v.dirty = true
	}
	if !v.dirty {
		return false
	}
	v.outputImg.WritePixels(out.Pix)
	v.dirty = false
	return true
}
