package blockfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func playScript(g *Game, ticks int) {
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		in.Clear()
		switch {
		case i == 0:
			in.Set(core.ActionPauseToggle)
		case i%47 == 0:
			in.Set(core.ActionHardDrop)
		case i%13 == 0:
			in.Set(core.ActionMoveLeft)
			in.Set(core.ActionRotateCW)
		case i%11 == 0:
			in.Set(core.ActionMoveRight)
		case i%97 == 0:
			in.Set(core.ActionHold)
		}
		g.Step(in)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	playScript(g1, 3000)
	playScript(g2, 3000)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick != 3000 {
		t.Errorf("Tick = %d, expected 3000", s1.Tick)
	}
	if s1.Score == 0 {
		t.Error("Score = 0 after 3000 scripted ticks")
	}
}

func TestGameIDs(t *testing.T) {
	tests := []struct {
		game  *Game
		id    string
		title string
	}{
		{New(), "blockfall", "Blockfall"},
		{NewLoose(), "blockfall_loose", "Blockfall (Loose)"},
	}
	for _, tt := range tests {
		if tt.game.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", tt.game.ID(), tt.id)
		}
		if tt.game.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", tt.game.Title(), tt.title)
		}
		if !registry.Exists(tt.id) {
			t.Errorf("registry.Exists(%q) = false", tt.id)
		}
	}
}

func TestLooseVariantRules(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1

	g := NewLoose()
	g.Reset(cfg)
	if g.bag.History() != 4 {
		t.Errorf("bag history = %d, expected 4", g.bag.History())
	}
	if g.cfg.Rotation.RowBump {
		t.Error("row bump enabled in the loose variant")
	}

	g = New()
	g.Reset(cfg)
	if g.bag.History() != 14 {
		t.Errorf("bag history = %d, expected 14", g.bag.History())
	}
}

func TestGameStateReportsPause(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g := New()
	g.Reset(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionPauseToggle)
	g.Step(in)
	in.Clear()
	for i := 0; i < 200; i++ {
		g.Step(in)
	}
	if g.Loop().State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", g.Loop().State())
	}

	in.Set(core.ActionPauseToggle)
	res := g.Step(in)
	if !res.State.Paused {
		t.Error("StepResult.State.Paused = false after pausing")
	}
	if res.State.GameOver {
		t.Error("StepResult.State.GameOver = true while paused")
	}
}

func TestWindowTooSmallPauses(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g := New()
	g.Reset(cfg)
	playScript(g, 1)
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}

	// rendering into a small buffer draws the overlay but changes nothing
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("small render missing overlay:\n%s", screen.String())
	}
	g.Step(core.NewInputFrame())
	if g.State().Paused {
		t.Error("Render() into a small screen paused the game")
	}

	g.Resize(30, 10)
	g.Step(core.NewInputFrame())
	if !g.State().Paused {
		t.Error("game kept running in a window that is too small")
	}

	// growing back does not resume by itself
	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if !g.State().Paused {
		t.Error("game resumed without PauseToggle")
	}
}

func TestRender(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"HOLD", "NEXT", "SCORE", "00000000", "LINES", "TIME", "PRESS ENTER"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// the next piece is drawn solid in the preview
	if !strings.ContainsRune(out, BlockChar) {
		t.Errorf("render has no blocks:\n%s", out)
	}
}
