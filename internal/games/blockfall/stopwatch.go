package blockfall

import (
	"fmt"
	"time"
)

// Stopwatch measures play time on the loop's clock, excluding pauses.
type Stopwatch struct {
	acc     time.Duration
	since   time.Duration
	running bool
}

// Play starts or resumes measuring at now.
func (s *Stopwatch) Play(now time.Duration) {
	if s.running {
		return
	}
	s.since = now
	s.running = true
}

// Pause stops measuring at now, keeping the accumulated time.
func (s *Stopwatch) Pause(now time.Duration) {
	if !s.running {
		return
	}
	s.acc += now - s.since
	s.running = false
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

// Elapsed returns the measured time as of now.
func (s *Stopwatch) Elapsed(now time.Duration) time.Duration {
	if s.running {
		return s.acc + now - s.since
	}
	return s.acc
}

// Running reports whether the stopwatch is measuring.
func (s *Stopwatch) Running() bool {
	return s.running
}

// formatClock renders d as mm:ss, or h:mm:ss past an hour.
func formatClock(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
