package viewer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":              "unlabeled",
		"   ":           "unlabeled",
		"after-sobel":   "after-sobel",
		"Box 5x5":       "Box_5x5",
		"a/b\\c":        "a_b_c",
		"v1.2":          "v1.2",
		" Sobel X (2) ": "Sobel_X__2_",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScreenshotQueues(t *testing.T) {
	v := New(newTestEngine(t), RunConfig{})
	v.Screenshot("a")
	v.Screenshot("b")
	if len(v.screenshotQueue) != 2 || v.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v", v.screenshotQueue)
	}
	if v.screenshotDir != DefaultScreenshotDir {
		t.Errorf("dir = %q, want %q", v.screenshotDir, DefaultScreenshotDir)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 255, // opaque
		64, 32, 0, 128, // half alpha
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	if c := img.NRGBAAt(0, 0); c.R != 100 || c.G != 50 || c.A != 255 {
		t.Errorf("opaque = %v", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 127 || c.G != 63 || c.A != 128 {
		t.Errorf("half = %v, want R=127 G=63 A=128", c)
	}
	if c := img.NRGBAAt(2, 0); c.A != 0 {
		t.Errorf("transparent = %v", c)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := unpremultiply([]byte{10, 20, 30, 255}, 1, 1)
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := got.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d; want 10,20,30", r>>8, g>>8, b>>8)
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}
