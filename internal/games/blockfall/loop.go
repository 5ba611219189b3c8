package blockfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// State is the phase of the game loop.
type State int

const (
	StateIdle State = iota
	StateCountdown
	StatePlaying
	StateLocking
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateLocking:
		return "locking"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Banner is the message shown over the field.
type Banner int

const (
	BannerNone Banner = iota
	BannerReady
	BannerCountdown
	BannerPaused
	BannerGameOver
	BannerPerfectClear
)

const ghostAlpha = 0.9

// Loop drives a playfield through countdowns, gravity, locking and game
// over. It is single-threaded: all progress happens inside Handle and
// Fire, which the owner must not call concurrently.
type Loop struct {
	cfg     config.BlockfallConfig
	pf      *engine.Playfield
	src     engine.Source
	draw    Renderer
	sched   Scheduler
	log     *log.Logger
	scoring Scoring
	gravity Gravity
	diff    *config.DifficultyManager

	state   State
	inputs  bool
	timer   timerSlot
	run     *run
	runs    uint64
	cancels int

	score int
	combo int
	lines int
	watch Stopwatch

	banner Banner
	count  int
	fading bool
}

// NewLoop creates an idle loop over a fresh playfield fed by src.
// A nil logger discards output.
func NewLoop(cfg config.BlockfallConfig, src engine.Source, draw Renderer, sched Scheduler, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if draw == nil {
		draw = NopRenderer{}
	}
	l := &Loop{
		cfg:     cfg,
		src:     src,
		draw:    draw,
		sched:   sched,
		log:     logger,
		scoring: NewClassicScoring(cfg.Scoring),
		gravity: Gravity{cfg: cfg.Gravity, timing: cfg.Timing},
		diff:    config.NewDifficultyManager(cfg.Difficulty),
	}
	l.pf = engine.NewPlayfield(src,
		engine.WithSize(cfg.Field.Width, cfg.Field.Height),
		engine.WithRowBump(cfg.Rotation.RowBump),
	)
	l.reset()
	return l
}

// SetScoring replaces the scoring policy.
func (l *Loop) SetScoring(s Scoring) {
	l.scoring = s
}

// Handle applies one input action. It reports whether the action was
// accepted.
func (l *Loop) Handle(a core.Action) bool {
	switch a {
	case core.ActionNewGame:
		l.reset()
		l.play()
		return true
	case core.ActionPauseToggle:
		switch l.state {
		case StateIdle:
			l.play()
		case StatePaused:
			l.resume()
		case StateCountdown, StatePlaying, StateLocking:
			l.pause()
		default:
			return false
		}
		return true
	}

	if !l.inputs || l.state != StatePlaying {
		return false
	}

	switch a {
	case core.ActionMoveLeft:
		return l.applyIf(l.pf.Shift(-1))
	case core.ActionMoveRight:
		return l.applyIf(l.pf.Shift(1))
	case core.ActionSoftDrop:
		return l.applyIf(l.pf.SoftDrop())
	case core.ActionRotateCCW:
		return l.applyIf(l.pf.Rotate(1))
	case core.ActionRotateCW:
		return l.applyIf(l.pf.Rotate(-1))
	case core.ActionHardDrop:
		// The piece is now resting, so moveDown locks it and the
		// landing run replaces the pending gravity wait.
		l.apply(l.pf.HardDrop())
		l.moveDown()
		return true
	case core.ActionHold:
		if !l.applyIf(l.pf.StashPiece()) {
			return false
		}
		l.score += l.scoring.Hold()
		return true
	default:
		return false
	}
}

// play starts a new round after a countdown.
func (l *Loop) play() {
	l.start(&run{
		name:  "play",
		state: StateCountdown,
		steps: l.countdown(),
		finally: func() {
			l.newField()
			l.watch.Play(l.sched.Now())
		},
		gravity: true,
	})
}

// resume continues a paused round after a countdown.
func (l *Loop) resume() {
	steps := append(l.countdown(), step{wait: func() time.Duration {
		return l.delay() / time.Duration(l.cfg.Timing.ResumeDivisor)
	}})
	l.start(&run{
		name:  "resume",
		state: StateCountdown,
		steps: steps,
		finally: func() {
			l.watch.Play(l.sched.Now())
		},
		gravity: true,
	})
}

func (l *Loop) pause() {
	l.lock(ErrPaused)
	l.state = StatePaused
	l.banner = BannerPaused
	l.fading = false
	l.watch.Pause(l.sched.Now())
}

// reset returns to idle with a freshly drawn next piece.
func (l *Loop) reset() {
	l.state = StateIdle
	l.banner = BannerReady
	l.fading = false
	l.apply(l.pf.SetNext(l.src.Next()))
	// the interrupted run's finally may restart the stopwatch
	l.lock(ErrReset)
	l.watch.Reset()
}

// die shows the game over banner, then resets.
func (l *Loop) die() {
	l.log.Info("game over", "score", l.score, "lines", l.lines, "err", engine.ErrSpawnBlocked)
	l.watch.Pause(l.sched.Now())
	l.start(&run{
		name:  "die",
		state: StateGameOver,
		steps: []step{
			{do: func() { l.banner = BannerGameOver }, wait: fixed(config.Ms(l.cfg.Timing.GameOverMs))},
			{do: l.reset},
		},
	})
}

func (l *Loop) countdown() []step {
	t := l.cfg.Timing
	steps := make([]step, 0, 2*t.CountdownFrom+1)
	for i := t.CountdownFrom; i > 0; i-- {
		n := i
		steps = append(steps,
			step{
				do:   func() { l.banner, l.count, l.fading = BannerCountdown, n, false },
				wait: fixed(config.Ms(t.CountdownShowMs)),
			},
			step{
				do:   func() { l.fading = true },
				wait: fixed(config.Ms(t.CountdownFadeMs)),
			},
		)
	}
	return append(steps, step{do: func() { l.banner, l.fading = BannerNone, false }})
}

// newField starts a round on an empty field.
func (l *Loop) newField() {
	l.draw.ClearSurface(SurfaceField)
	l.score, l.combo, l.lines = 0, 0, 0
	l.apply(l.pf.Reset())
}

// moveDown applies one gravity step. It returns false when the piece
// locked or the round ended, in which case another run has taken over.
func (l *Loop) moveDown() bool {
	fall := l.pf.MoveDown()
	switch fall.Outcome {
	case engine.Moved:
		l.apply(fall.Events)
		return true
	case engine.Landed:
		l.land(fall)
		return false
	default:
		l.die()
		return false
	}
}

// land scores a lock and plays the landing and row flash animation.
func (l *Loop) land(f engine.Fall) {
	res := f.Clear
	kind := l.pf.Active()
	perfect := res.PerfectClear()

	l.lines += res.Full
	l.score += l.scoring.Lock(res)
	l.bumpCombo(res.Full)
	if res.Full > 0 {
		l.log.Debug("rows cleared", "lines", res.Full, "perfect", perfect, "combo", l.combo)
	}

	steps := []step{{
		do:   func() { l.paintPiece(kind, f.At, true) },
		wait: l.lockTick,
	}}
	if res.Full > 0 {
		var saved []RowImage
		steps = append(steps,
			step{
				do: func() {
					if perfect {
						l.banner = BannerPerfectClear
					}
				},
				wait: l.lockTick,
			},
			step{
				do: func() {
					saved = saved[:0]
					for _, y := range res.Fulls {
						saved = append(saved, l.draw.CaptureRow(SurfaceField, y))
						l.eraseRow(y)
					}
				},
				wait: func() time.Duration {
					d := l.lockTick()
					if perfect {
						d += config.Ms(l.cfg.Timing.PerfectClearMs)
					}
					return d
				},
			},
			step{
				do: func() {
					for i, y := range res.Fulls {
						if i < len(saved) {
							l.draw.RestoreRow(SurfaceField, y, saved[i])
						}
					}
				},
				wait: l.lockTick,
			},
		)
	}

	l.start(&run{
		name:  "land",
		state: StateLocking,
		steps: steps,
		finally: func() {
			l.paintPiece(kind, f.At, false)
			if res.Full > 0 {
				l.shiftRows(res)
			}
			if l.banner == BannerPerfectClear {
				l.banner = BannerNone
			}
			l.apply(l.pf.Advance())
		},
		gravity: true,
	})
}

// bumpCombo adds cleared rows to the combo. A lock that clears nothing
// leaves the sum unchanged, which ends the combo.
func (l *Loop) bumpCombo(full int) {
	n := l.combo + full
	if n == 0 || n == l.combo {
		l.combo = 0
		return
	}
	l.combo = n
	l.score += l.scoring.Combo(n)
}

// shiftRows moves the drawn field to match a line clear, bottom row first.
func (l *Loop) shiftRows(res engine.ClearResult) {
	for y := l.pf.Height() - 1; y >= -engine.Overhang; y-- {
		if res.IsFull(y) {
			continue
		}
		if to := res.Shift[y]; to != y {
			l.draw.RestoreRow(SurfaceField, to, l.draw.CaptureRow(SurfaceField, y))
		}
	}
	for y := -engine.Overhang; y < -engine.Overhang+res.Full; y++ {
		l.eraseRow(y)
	}
}

func (l *Loop) eraseRow(y int) {
	for x := 0; x < l.pf.Width(); x++ {
		l.draw.EraseCell(SurfaceField, x, y)
	}
}

// delay is the current gravity interval.
func (l *Loop) delay() time.Duration {
	seconds := int(l.watch.Elapsed(l.sched.Now()) / time.Second)
	return l.gravity.Delay(l.diff.SpeedScore(l.score, seconds))
}

func (l *Loop) lockTick() time.Duration {
	return l.gravity.LockTick(l.delay())
}

// applyIf applies events of a successful move.
func (l *Loop) applyIf(ok bool, events []engine.Event) bool {
	if ok {
		l.apply(events)
	}
	return ok
}

// apply redraws and scores playfield events.
func (l *Loop) apply(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventSpawned:
			l.paintGhost(ev.Kind, ev.To)
			l.paintPiece(ev.Kind, ev.To.Cursor, false)
		case engine.EventMoved:
			l.erasePiece(ev.Kind, ev.From.Cursor)
			l.eraseGhost(ev.Kind, ev.From)
			l.paintGhost(ev.Kind, ev.To)
			l.paintPiece(ev.Kind, ev.To.Cursor, false)
			l.score += l.scoring.Move(ev.From.Cursor, ev.To.Cursor)
		case engine.EventStowed:
			l.erasePiece(ev.Kind, ev.From.Cursor)
			l.eraseGhost(ev.Kind, ev.From)
		case engine.EventHoldChanged:
			l.paintPreview(SurfaceHold, ev.Kind, ev.Empty)
		case engine.EventNextChanged:
			l.paintPreview(SurfaceNext, ev.Kind, false)
		}
	}
}

func (l *Loop) paintPiece(k engine.Kind, c engine.Cursor, light bool) {
	col := k.Color()
	if light {
		col = k.Light()
	}
	for _, cell := range engine.PieceCells(k, c) {
		l.draw.DrawCell(SurfaceField, cell.X, cell.Y, col, 1)
	}
}

func (l *Loop) erasePiece(k engine.Kind, c engine.Cursor) {
	for _, cell := range engine.PieceCells(k, c) {
		l.draw.EraseCell(SurfaceField, cell.X, cell.Y)
	}
}

func ghostCursor(p engine.Placement) (engine.Cursor, bool) {
	if p.Ghost == engine.SpawnRow {
		return engine.Cursor{}, false
	}
	return engine.Cursor{X: p.X, Y: p.Ghost, R: p.R}, true
}

func (l *Loop) paintGhost(k engine.Kind, p engine.Placement) {
	c, ok := ghostCursor(p)
	if !ok {
		return
	}
	for _, cell := range engine.PieceCells(k, c) {
		l.draw.DrawCell(SurfaceField, cell.X, cell.Y, k.Light(), ghostAlpha)
	}
}

func (l *Loop) eraseGhost(k engine.Kind, p engine.Placement) {
	if c, ok := ghostCursor(p); ok {
		l.erasePiece(k, c)
	}
}

func (l *Loop) paintPreview(s Surface, k engine.Kind, empty bool) {
	l.draw.ClearSurface(s)
	if empty {
		return
	}
	for _, c := range k.Offsets(0) {
		l.draw.DrawCell(s, c.X, c.Y, k.Color(), 1)
	}
}

// State returns the loop phase.
func (l *Loop) State() State { return l.state }

// Score returns the current score.
func (l *Loop) Score() int { return l.score }

// Combo returns the current combo counter.
func (l *Loop) Combo() int { return l.combo }

// Lines returns rows cleared this round.
func (l *Loop) Lines() int { return l.lines }

// Elapsed returns the round's play time.
func (l *Loop) Elapsed() time.Duration { return l.watch.Elapsed(l.sched.Now()) }

// InputsEnabled reports whether movement input is accepted.
func (l *Loop) InputsEnabled() bool { return l.inputs && l.state == StatePlaying }

// CancelledWaits counts waits rejected by lock.
func (l *Loop) CancelledWaits() int { return l.cancels }

// Banner returns the banner and the countdown digit, and whether the
// banner is fading out.
func (l *Loop) Banner() (Banner, int, bool) { return l.banner, l.count, l.fading }

// Playfield exposes the playfield for inspection. Callers must not mutate it.
func (l *Loop) Playfield() *engine.Playfield { return l.pf }
