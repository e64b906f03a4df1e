package session

import "time"

// FPSCounter counts frames and reports how many were seen once per
// interval.
type FPSCounter struct {
	interval time.Duration
	frames   int
	fps      int
	last     time.Time
}

func NewFPSCounter(interval time.Duration, now time.Time) *FPSCounter {
	return &FPSCounter{
		interval: interval,
		last:     now,
	}
}

// Tick records a frame. When an interval has passed since the last report
// it returns the frame count for that interval and true.
func (f *FPSCounter) Tick(now time.Time) (int, bool) {
	f.frames++

	if now.Sub(f.last) < f.interval {
		return 0, false
	}

	f.fps = f.frames
	f.frames = 0
	f.last = now
	return f.fps, true
}

// FPS is the count from the last full interval.
func (f *FPSCounter) FPS() int {
	return f.fps
}
