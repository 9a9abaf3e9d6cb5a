package convscan

import (
	"bytes"
	"image"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsRebuild(t *testing.T) {
	e := newTestEngine(t, nil, DefaultConfig())
	e.SetDebugMode(true)

	output := captureStderr(t, func() { _ = e.SetStride(2) })

	if !strings.Contains(output, "[convscan] rebuild:") || !strings.Contains(output, "95x95") {
		t.Errorf("expected rebuild log in stderr, got: %q", output)
	}
}

func TestDebugMode_LogsPassComplete(t *testing.T) {
	e := newTestEngine(t, SyntheticPattern(4, 3), identityConfig())
	e.SetDebugMode(true)

	// 2x1 output: two steps complete one pass.
	output := captureStderr(t, func() {
		e.Step()
		e.Step()
	})

	if !strings.Contains(output, "pass 1 complete (2x1 samples)") {
		t.Errorf("expected pass log in stderr, got: %q", output)
	}
	if e.Cursor() != (image.Point{}) {
		t.Errorf("cursor = %v, want (0,0) after wrap", e.Cursor())
	}
}

func TestReleaseModeIsSilent(t *testing.T) {
	e := newTestEngine(t, nil, DefaultConfig())

	output := captureStderr(t, func() {
		_ = e.SetStride(2)
		e.Step()
		_ = e.SetWeight(9, 9, 1)
	})

	if output != "" {
		t.Errorf("expected no stderr output, got: %q", output)
	}
}
