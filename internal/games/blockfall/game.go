// Package blockfall implements the falling-block puzzle game on top of the
// engine package. The loop owns timing and animation; Game adapts it to
// the game registry and drives it from the platform tick.
package blockfall

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger is the parent logger of every game instance.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger games derive their loggers from.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for one variant.
type Game struct {
	variant Variant

	cfg     config.BlockfallConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	bag    *engine.Bag
	clock  *Clock
	canvas *Canvas
	loop   *Loop

	tick     time.Duration
	ticks    uint64
	tooSmall bool
}

// New creates the classic game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLoose creates the loose variant.
func NewLoose() *Game {
	return &Game{variant: VariantLoose}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title()
}

// Reset loads the configuration and starts over in the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBlockfallConfig()
	}
	preset := difficultyPreset
	if runtime.Difficulty != "" {
		if p, err := config.ParsePreset(runtime.Difficulty); err == nil {
			preset = p
		} else {
			logger.Warn("ignoring difficulty", "difficulty", runtime.Difficulty, "err", err)
		}
	}
	config.ApplyPreset(&cfg, preset)
	g.variant.apply(&cfg)

	g.cfg = cfg
	g.runtime = runtime
	g.tick = runtime.TickDuration()
	g.ticks = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.log = logger.With("game", g.ID(), "session", uuid.NewString()[:8])

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.bag = engine.NewBag(rng, cfg.Bag.History)
	g.clock = NewClock()
	g.canvas = NewCanvas(cfg.Field.Width, cfg.Field.Height)
	g.loop = NewLoop(cfg, g.bag, g.canvas, g.clock, g.log)

	g.log.Debug("reset", "seed", runtime.Seed, "history", cfg.Bag.History, "row_bump", cfg.Rotation.RowBump)
}

// Resize records the screen size. A screen that cannot fit the layout
// pauses the game on the next Step.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	w, h := layoutSize(g.cfg.Field)
	g.tooSmall = width < w || height < h
}

// Step applies the frame's actions in order, then advances the loop clock
// by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++

	if g.tooSmall {
		switch g.loop.State() {
		case StateCountdown, StatePlaying, StateLocking:
			g.loop.Handle(core.ActionPauseToggle)
		}
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.loop.Handle(a)
	}
	g.clock.Advance(g.tick, g.loop.Fire)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.loop.State()
	return core.GameState{
		Score:    g.loop.Score(),
		Lines:    g.loop.Lines(),
		Elapsed:  g.loop.Elapsed(),
		GameOver: s == StateGameOver,
		Paused:   s == StatePaused,
	}
}

// Loop exposes the game loop for tests and tools.
func (g *Game) Loop() *Loop {
	return g.loop
}
