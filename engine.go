package convscan

import (
	"fmt"
	"image"
)

// DefaultSpeed is the number of samples computed per tick.
const DefaultSpeed = 6

// Config holds the initial engine configuration.
type Config struct {
	Kernel        Kernel
	Stride        int
	Padding       PaddingMode
	Normalization Normalization
	Speed         int
	Paused        bool
}

// DefaultConfig returns the Sharpen kernel at stride 1, valid padding, clip
// normalization, DefaultSpeed samples per tick, playing.
func DefaultConfig() Config {
	k, _ := LookupPreset(PresetSharpen)
	return Config{
		Kernel: k,
		Stride: 1,
		Speed:  DefaultSpeed,
	}
}

// Engine owns the kernel configuration, the input raster, the output raster,
// and the scan cursor. It is not safe for concurrent use: configuration calls
// must be serialized with Tick, which the single-threaded Ebitengine loop does
// naturally.
type Engine struct {
	input  *image.RGBA
	output *image.RGBA

	kernel  Kernel
	sumAbs  float64
	geom    Geometry
	norm    Normalization
	speed   int
	playing bool

	cursor image.Point
	outW   int
	outH   int
	passes int

	debug bool
}

// New creates an engine over input. A nil input selects a
// DefaultPatternSize synthetic pattern. The output raster is built
// immediately; an invalid geometry is returned as an error.
func New(input image.Image, cfg Config) (*Engine, error) {
	var src *image.RGBA
	if input == nil {
		src = SyntheticPattern(DefaultPatternSize, DefaultPatternSize)
	} else {
		src = ToRGBA(input)
	}
	if cfg.Kernel.size == 0 {
		return nil, fmt.Errorf("%w: config has no kernel", ErrInvalidKernel)
	}
	e := &Engine{
		input:   src,
		kernel:  cfg.Kernel.Clone(),
		sumAbs:  cfg.Kernel.SumAbs(),
		norm:    cfg.Normalization,
		speed:   max(cfg.Speed, 0),
		playing: !cfg.Paused,
	}
	g := Geometry{
		InputW:     src.Rect.Dx(),
		InputH:     src.Rect.Dy(),
		KernelSize: e.kernel.size,
		Stride:     cfg.Stride,
		Padding:    cfg.Padding,
	}
	if err := e.rebuild(g); err != nil {
		return nil, err
	}
	return e, nil
}

// rebuild reallocates the output raster for g, fills it with opaque black,
// and rewinds the cursor. On error the engine is left unchanged.
func (e *Engine) rebuild(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	w, h := g.OutputSize()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	e.geom = g
	e.output = out
	e.outW, e.outH = w, h
	e.cursor = image.Point{}
	e.passes = 0
	if e.debug {
		debugf("rebuild: input %dx%d kernel %d stride %d padding %s -> output %dx%d",
			g.InputW, g.InputH, g.KernelSize, g.Stride, g.Padding, w, h)
	}
	return nil
}

// advance evaluates the sample under the cursor, writes it, and moves the
// cursor in row-major order, wrapping to (0, 0) after the last cell.
func (e *Engine) advance() {
	v := evaluate(e.input, e.kernel, e.sumAbs, e.geom.Origin(e.cursor), e.norm)
	i := e.cursor.Y*e.output.Stride + e.cursor.X*4
	px := e.output.Pix[i : i+4 : i+4]
	px[0], px[1], px[2], px[3] = v, v, v, 255

	e.cursor.X++
	if e.cursor.X >= e.outW {
		e.cursor.X = 0
		e.cursor.Y++
	}
	if e.cursor.Y >= e.outH {
		e.cursor = image.Point{}
		e.passes++
		if e.debug {
			debugf("pass %d complete (%dx%d samples)", e.passes, e.outW, e.outH)
		}
	}
}

// Tick performs Speed advances when playing and returns how many ran.
func (e *Engine) Tick() int {
	if !e.playing {
		return 0
	}
	for i := 0; i < e.speed; i++ {
		e.advance()
	}
	return e.speed
}

// Step performs a single advance regardless of the play state.
func (e *Engine) Step() {
	e.advance()
}

// ResetScan rewinds the cursor to (0, 0) without touching the output raster.
func (e *Engine) ResetScan() {
	e.cursor = image.Point{}
}

// Restart rebuilds the output raster at the current geometry, clearing all
// written samples and rewinding the cursor.
func (e *Engine) Restart() {
	// The current geometry already validated once, so this cannot fail.
	_ = e.rebuild(e.geom)
}

// SampleAt evaluates the output sample at p without writing it.
func (e *Engine) SampleAt(p image.Point) uint8 {
	return evaluate(e.input, e.kernel, e.sumAbs, e.geom.Origin(p), e.norm)
}

// --- Configuration ---

// SetKernel replaces the kernel and rebuilds the output raster. An invalid
// matrix or a kernel too large for the input leaves the engine unchanged.
func (e *Engine) SetKernel(rows [][]float64) error {
	k, err := NewKernel(rows)
	if err != nil {
		return err
	}
	return e.setKernel(k)
}

// SetKernelSize replaces the kernel with a k x k zero kernel and rebuilds.
func (e *Engine) SetKernelSize(k int) error {
	z, err := ZeroKernel(k)
	if err != nil {
		return err
	}
	return e.setKernel(z)
}

// SetPreset installs the named preset kernel and rebuilds.
func (e *Engine) SetPreset(name string) error {
	k, err := LookupPreset(name)
	if err != nil {
		return err
	}
	return e.setKernel(k)
}

func (e *Engine) setKernel(k Kernel) error {
	g := e.geom
	g.KernelSize = k.size
	if err := e.rebuild(g); err != nil {
		return err
	}
	e.kernel = k
	e.sumAbs = k.SumAbs()
	return nil
}

// SetWeight edits a single kernel weight in place. The kernel size is
// unchanged, so the output raster is kept.
func (e *Engine) SetWeight(row, col int, w float64) error {
	k, err := e.kernel.with(row, col, w)
	if err != nil {
		return err
	}
	e.kernel = k
	e.sumAbs = k.SumAbs()
	return nil
}

// SetStride sets the stride and rebuilds. n must be >= 1.
func (e *Engine) SetStride(n int) error {
	g := e.geom
	g.Stride = n
	return e.rebuild(g)
}

// SetPadding sets the padding mode and rebuilds.
func (e *Engine) SetPadding(m PaddingMode) error {
	g := e.geom
	g.Padding = m
	return e.rebuild(g)
}

// SetNormalization changes how responses map to intensity. Samples already
// written keep their values.
func (e *Engine) SetNormalization(m Normalization) {
	e.norm = m
}

// SetSpeed sets the number of advances per Tick. Negative values clamp to 0.
func (e *Engine) SetSpeed(n int) {
	e.speed = max(n, 0)
}

// SetPlaying opens or closes the Tick gate.
func (e *Engine) SetPlaying(playing bool) {
	e.playing = playing
}

// TogglePlaying flips the play state and returns the new value.
func (e *Engine) TogglePlaying() bool {
	e.playing = !e.playing
	return e.playing
}

// SetDebugMode enables rebuild and pass logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// --- Accessors ---

// Input returns the input raster. It MUST NOT be mutated.
func (e *Engine) Input() *image.RGBA { return e.input }

// Output returns the output raster. The pointer changes on every rebuild;
// callers should fetch it each frame and MUST NOT mutate it.
func (e *Engine) Output() *image.RGBA { return e.output }

// Cursor returns the output coordinate the next advance will write.
func (e *Engine) Cursor() image.Point { return e.cursor }

// Window returns the input-space rectangle the next advance will sample.
func (e *Engine) Window() image.Rectangle { return e.geom.Window(e.cursor) }

// Kernel returns a copy of the current kernel.
func (e *Engine) Kernel() Kernel { return e.kernel.Clone() }

// Geometry returns the current geometry.
func (e *Engine) Geometry() Geometry { return e.geom }

// OutputSize returns the output raster dimensions.
func (e *Engine) OutputSize() (w, h int) { return e.outW, e.outH }

// Stride returns the current stride.
func (e *Engine) Stride() int { return e.geom.Stride }

// Padding returns the current padding mode.
func (e *Engine) Padding() PaddingMode { return e.geom.Padding }

// Normalization returns the current normalization mode.
func (e *Engine) Normalization() Normalization { return e.norm }

// Speed returns the number of advances per Tick.
func (e *Engine) Speed() int { return e.speed }

// Playing reports whether Tick advances the scan.
func (e *Engine) Playing() bool { return e.playing }

// Passes returns how many full sweeps have completed since the last rebuild.
func (e *Engine) Passes() int { return e.passes }
