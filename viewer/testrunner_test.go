package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/convscan"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "preset", "name": "Sobel X"},
			{"action": "wait", "frames": 3},
			{"action": "press", "name": "toggle-play"},
			{"action": "stride", "value": 2}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "preset" || runner.steps[1].Name != "Sobel X" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[4].Value != 2 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "jump"}]}`,
		"unknown key":    `{"steps": [{"action": "press", "name": "fly"}]}`,
		"unknown preset": `{"steps": [{"action": "preset", "name": "Emboss"}]}`,
		"bad stride":     `{"steps": [{"action": "stride", "value": 0}]}`,
		"bad padding":    `{"steps": [{"action": "padding", "name": "full"}]}`,
		"bad norm":       `{"steps": [{"action": "norm", "name": "log"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadTestScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "quit"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadTestScriptFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 1 {
		t.Errorf("steps = %d, want 1", len(r.steps))
	}
	if _, err := LoadTestScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunnerStep_Config(t *testing.T) {
	v := New(newTestEngine(t), RunConfig{})
	data := []byte(`{"steps": [
		{"action": "preset", "name": "Identity"},
		{"action": "stride", "value": 2},
		{"action": "padding", "name": "same"},
		{"action": "norm", "name": "abs-clip"},
		{"action": "speed", "value": 40},
		{"action": "weight", "row": 0, "col": 0, "weight": -1}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)
	for i := 0; i < 6; i++ {
		runner.step(v)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}

	e := v.Engine()
	if e.Stride() != 2 || e.Padding() != convscan.PaddingSame {
		t.Errorf("stride/padding = %d/%s, want 2/same", e.Stride(), e.Padding())
	}
	if e.Normalization() != convscan.NormAbsClip {
		t.Errorf("norm = %s, want abs-clip", e.Normalization())
	}
	if e.Speed() != 40 {
		t.Errorf("speed = %d, want 40", e.Speed())
	}
	if e.Kernel().At(0, 0) != -1 || e.Kernel().At(1, 1) != 1 {
		t.Errorf("kernel = %v, want identity with -1 in the corner", e.Kernel().Rows())
	}
}

func TestRunnerStep_PressWaitsForInjection(t *testing.T) {
	v := New(newTestEngine(t), RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "name": "toggle-play"},
		{"action": "screenshot", "label": "paused"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)

	runner.step(v)
	if len(v.injectQueue) != 1 {
		t.Fatalf("expected 1 queued action, got %d", len(v.injectQueue))
	}
	// Blocked until the queue drains.
	runner.step(v)
	if len(v.screenshotQueue) != 0 {
		t.Error("screenshot should wait for the injected action")
	}

	if a, ok := v.popInjected(); !ok || a != ActionTogglePlay {
		t.Fatalf("popInjected = %v, %v", a, ok)
	}
	runner.step(v)
	if len(v.screenshotQueue) != 1 || v.screenshotQueue[0] != "paused" {
		t.Errorf("screenshotQueue = %v, want [paused]", v.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	v := New(newTestEngine(t), RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)

	runner.step(v) // wait frame 1
	runner.step(v) // 2
	runner.step(v) // 3
	if v.quit {
		t.Fatal("quit ran before the wait elapsed")
	}
	runner.step(v)
	if !v.quit {
		t.Error("quit step should set quit")
	}
}

func TestRunnerStep_ErrorDoesNotStop(t *testing.T) {
	v := New(newTestEngine(t), RunConfig{})
	// Row 9 is outside the 3x3 kernel; only the engine can reject it.
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "weight", "row": 9, "col": 0, "weight": 1},
		{"action": "speed", "value": 9}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)

	before := v.Engine().Kernel().Rows()
	out := withStderr(t, func() {
		runner.step(v)
		runner.step(v)
	})
	if !strings.Contains(out, "test script step 0 (weight)") {
		t.Errorf("stderr = %q, want the rejected step logged", out)
	}
	if got := v.Engine().Kernel().Rows(); got[0][0] != before[0][0] {
		t.Errorf("kernel changed after rejected step: %v", got)
	}
	if v.Engine().Speed() != 9 {
		t.Errorf("speed = %d, want 9", v.Engine().Speed())
	}
}
