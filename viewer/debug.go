package viewer

import (
	"fmt"
	"os"
	"time"
)

// logf prints one line to stderr with the package prefix.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[convscan] "+format+"\n", args...)
}

// frameStats accumulates per-frame timings while debug mode is on and is
// flushed to stderr once per statsWindow frames.
type frameStats struct {
	frames     int
	samples    int
	tickTime   time.Duration
	uploadTime time.Duration
	drawTime   time.Duration
}

const statsWindow = 60

// add records one frame and reports whether the window is full.
func (s *frameStats) add(samples int, tick, upload, draw time.Duration) bool {
	s.frames++
	s.samples += samples
	s.tickTime += tick
	s.uploadTime += upload
	s.drawTime += draw
	return s.frames >= statsWindow
}

// flush logs averages over the collected frames and resets the window.
func (s *frameStats) flush() {
	if s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	logf("frames: %d | samples: %d | tick: %v | upload: %v | draw: %v (avg per frame)",
		s.frames, s.samples, s.tickTime/n, s.uploadTime/n, s.drawTime/n)
	*s = frameStats{}
}
