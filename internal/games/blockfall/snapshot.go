package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Clock          time.Duration
	State          string
	Score          int
	Lines          int
	Combo          int
	Active         engine.Kind
	Cursor         engine.Cursor
	Next           engine.Kind
	Hold           engine.Kind
	HasHold        bool
	Locked         int // cells stored in the field, border excluded
	CancelledWaits int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	pf := g.loop.Playfield()
	hold, hasHold := pf.Hold()

	locked := 0
	for _, c := range pf.Field().Cells() {
		if c.X >= 0 && c.X < pf.Width() && c.Y < pf.Height() {
			locked++
		}
	}

	return Snapshot{
		Tick:           g.ticks,
		Clock:          g.clock.Now(),
		State:          g.loop.State().String(),
		Score:          g.loop.Score(),
		Lines:          g.loop.Lines(),
		Combo:          g.loop.Combo(),
		Active:         pf.Active(),
		Cursor:         pf.Cursor(),
		Next:           pf.Next(),
		Hold:           hold,
		HasHold:        hasHold,
		Locked:         locked,
		CancelledWaits: g.loop.CancelledWaits(),
	}
}
