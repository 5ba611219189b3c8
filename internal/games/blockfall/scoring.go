package blockfall

import (
	"math"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Scoring decides how many points each event is worth.
type Scoring interface {
	// Move scores a cursor change of the active piece.
	Move(from, to engine.Cursor) int
	// Lock scores a locked piece and the rows it cleared.
	Lock(res engine.ClearResult) int
	// Combo scores a combo counter that just changed to n (n > 0).
	Combo(n int) int
	// Hold scores a successful hold.
	Hold() int
}

// ClassicScoring awards points for every cell of movement, every lock,
// cleared rows, perfect clears, combos and holds.
type ClassicScoring struct {
	cfg config.ScoringConfig
}

// NewClassicScoring creates the default scoring policy.
func NewClassicScoring(cfg config.ScoringConfig) ClassicScoring {
	return ClassicScoring{cfg: cfg}
}

// Move awards one point for an odd horizontal shift, two per row fallen
// and one for an odd number of quarter turns.
func (s ClassicScoring) Move(from, to engine.Cursor) int {
	dx := (to.X - from.X) & 1
	dy := (to.Y - from.Y) << 1
	dr := (to.R - from.R) & 1
	return (dx + dy + dr) * s.cfg.Unit
}

// Lock awards the lock bonus plus the row bonus, and the perfect clear
// bonus when the field was emptied.
func (s ClassicScoring) Lock(res engine.ClearResult) int {
	points := s.cfg.Lock
	if res.Full > 0 {
		points += s.cfg.Line*res.Full - s.cfg.LineOffset
	}
	if res.PerfectClear() {
		points += s.cfg.PerfectClear
	}
	return points * s.cfg.Unit
}

// Combo awards a bonus proportional to the combo counter.
func (s ClassicScoring) Combo(n int) int {
	return s.cfg.Combo * n * s.cfg.Unit
}

// Hold awards the hold bonus.
func (s ClassicScoring) Hold() int {
	return s.cfg.Hold * s.cfg.Unit
}

// Gravity computes fall delays from the speed score.
type Gravity struct {
	cfg    config.GravityConfig
	timing config.TimingConfig
}

// Delay is the time between gravity steps:
// base * (1 + 1/decay)^-(speed >> shift) + floor.
func (g Gravity) Delay(speed int) time.Duration {
	exp := float64(speed >> g.cfg.ScoreShift)
	ms := g.cfg.BaseMs*math.Pow(1+1/g.cfg.Decay, -exp) + g.cfg.FloorMs
	return time.Duration(ms * float64(time.Millisecond))
}

// LockTick is the animation step used while a piece locks.
func (g Gravity) LockTick(delay time.Duration) time.Duration {
	return delay/time.Duration(g.timing.LockTickDivisor) + config.Ms(g.timing.LockTickBaseMs)
}
