package viewer

import (
	"errors"
	"testing"

	"github.com/phanxgames/convscan"
)

func newTestEngine(t *testing.T) *convscan.Engine {
	t.Helper()
	return newTestEngineSize(t, 32, 24)
}

func newTestEngineSize(t *testing.T, w, h int) *convscan.Engine {
	t.Helper()
	e, err := convscan.New(convscan.SyntheticPattern(w, h), convscan.DefaultConfig())
	if err != nil {
		t.Fatalf("convscan.New: %v", err)
	}
	return e
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := range actionNames {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q): %v", a.String(), err)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestParseActionPreset(t *testing.T) {
	a, err := ParseAction("preset-3")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := a.presetIndex(); !ok || i != 2 {
		t.Errorf("preset-3 index = %d, %v; want 2, true", i, ok)
	}
	if a.String() != "preset-3" {
		t.Errorf("String() = %q, want %q", a.String(), "preset-3")
	}

	for _, bad := range []string{"preset-0", "preset-8", "preset-x", "jump", ""} {
		if _, err := ParseAction(bad); err == nil {
			t.Errorf("ParseAction(%q) should fail", bad)
		}
	}
}

func TestKeyBindingsUnique(t *testing.T) {
	type combo struct {
		key   int
		shift bool
	}
	seen := map[combo]Action{}
	for _, b := range keyBindings {
		c := combo{int(b.key), b.shift}
		if prev, ok := seen[c]; ok {
			t.Errorf("key %v (shift=%v) bound to both %s and %s", b.key, b.shift, prev, b.action)
		}
		seen[c] = b.action
	}
}

func TestApplyEngineActionSpeed(t *testing.T) {
	e := newTestEngine(t)
	start := e.Speed()

	_ = applyEngineAction(e, ActionSpeedUp)
	if e.Speed() != start+1 {
		t.Errorf("speed = %d, want %d", e.Speed(), start+1)
	}
	_ = applyEngineAction(e, ActionSpeedUpFast)
	if e.Speed() != start+1+fastSpeedStep {
		t.Errorf("speed = %d, want %d", e.Speed(), start+1+fastSpeedStep)
	}
	for i := 0; i < 5; i++ {
		_ = applyEngineAction(e, ActionSpeedDownFast)
	}
	if e.Speed() != 0 {
		t.Errorf("speed = %d, want clamp at 0", e.Speed())
	}
}

func TestApplyEngineActionStrideCycle(t *testing.T) {
	e := newTestEngine(t)
	want := []int{2, 3, 4, 1, 2}
	for i, w := range want {
		if err := applyEngineAction(e, ActionCycleStride); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if e.Stride() != w {
			t.Errorf("cycle %d: stride = %d, want %d", i, e.Stride(), w)
		}
	}
}

func TestApplyEngineActionPaddingAndNorm(t *testing.T) {
	e := newTestEngine(t)
	_ = applyEngineAction(e, ActionTogglePadding)
	if e.Padding() != convscan.PaddingSame {
		t.Errorf("padding = %s, want same", e.Padding())
	}
	_ = applyEngineAction(e, ActionTogglePadding)
	if e.Padding() != convscan.PaddingValid {
		t.Errorf("padding = %s, want valid", e.Padding())
	}

	want := []convscan.Normalization{convscan.NormSignedMap, convscan.NormAbsClip, convscan.NormClip}
	for _, w := range want {
		_ = applyEngineAction(e, ActionCycleNorm)
		if e.Normalization() != w {
			t.Errorf("norm = %s, want %s", e.Normalization(), w)
		}
	}
}

func TestApplyEngineActionKernelSize(t *testing.T) {
	e := newTestEngine(t)
	_ = applyEngineAction(e, ActionKernelGrow)
	if e.Kernel().Size() != 5 {
		t.Errorf("grow: size = %d, want 5", e.Kernel().Size())
	}
	_ = applyEngineAction(e, ActionKernelShrink)
	_ = applyEngineAction(e, ActionKernelShrink)
	if e.Kernel().Size() != 1 {
		t.Errorf("shrink: size = %d, want 1", e.Kernel().Size())
	}
	_ = applyEngineAction(e, ActionKernelShrink)
	if e.Kernel().Size() != 1 {
		t.Errorf("shrink below 1: size = %d, want 1", e.Kernel().Size())
	}
}

func TestApplyEngineActionKernelTooLarge(t *testing.T) {
	e := newTestEngineSize(t, 5, 5)
	_ = applyEngineAction(e, ActionKernelGrow) // 5x5 fits exactly
	err := applyEngineAction(e, ActionKernelGrow)
	if !errors.Is(err, convscan.ErrInvalidGeometry) {
		t.Errorf("7x7 on 5x5: err = %v, want ErrInvalidGeometry", err)
	}
	if e.Kernel().Size() != 5 {
		t.Errorf("size = %d, want 5 after failed grow", e.Kernel().Size())
	}
}

func TestApplyEngineActionPreset(t *testing.T) {
	e := newTestEngine(t)
	if err := applyEngineAction(e, ActionPreset(6)); err != nil {
		t.Fatal(err)
	}
	if e.Kernel().Size() != 5 {
		t.Errorf("Box 5x5 preset size = %d, want 5", e.Kernel().Size())
	}
	if err := applyEngineAction(e, ActionPreset(40)); err == nil {
		t.Error("expected error for out-of-range preset")
	}
}

func TestApplyEngineActionScan(t *testing.T) {
	e := newTestEngine(t)
	_ = applyEngineAction(e, ActionStep)
	_ = applyEngineAction(e, ActionStep)
	if e.Cursor().X != 2 {
		t.Errorf("cursor x = %d, want 2", e.Cursor().X)
	}
	_ = applyEngineAction(e, ActionResetScan)
	if e.Cursor().X != 0 {
		t.Errorf("cursor x = %d, want 0 after reset", e.Cursor().X)
	}
	_ = applyEngineAction(e, ActionTogglePlay)
	if e.Playing() {
		t.Error("toggle should pause")
	}
}
