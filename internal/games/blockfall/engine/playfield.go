package engine

import (
	"errors"
	"fmt"
)

const (
	// SpawnRow is the cursor row of a freshly assigned piece.
	SpawnRow = -4
	// Overhang is the number of rows above the field that pieces may occupy.
	Overhang = 3
)

// ErrSpawnBlocked is reported when a new piece cannot leave the spawn row.
var ErrSpawnBlocked = errors.New("spawn blocked")

// Cursor is the origin and orientation of the active piece.
type Cursor struct {
	X, Y, R int
}

// Outcome is the result of a gravity step.
type Outcome int

const (
	// Moved: the piece fell one row.
	Moved Outcome = iota
	// Landed: the piece locked at its resting row.
	Landed
	// Blocked: the piece could not leave the spawn row.
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Landed:
		return "landed"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Fall describes what a MoveDown call did.
type Fall struct {
	Outcome Outcome
	Events  []Event
	// At is the resting cursor when Outcome is Landed.
	At    Cursor
	Clear ClearResult
}

// Playfield owns the locked field, the active piece and the hold/next
// slots. Every mutation returns the events a renderer needs.
type Playfield struct {
	width   int
	height  int
	rowBump bool

	field *Space
	rows  []int

	src      Source
	active   Kind
	cursor   Cursor
	hold     Kind
	hasHold  bool
	holdUsed bool
	next     Kind

	drops [4][]int
}

// Option configures a Playfield.
type Option func(*Playfield)

// WithSize sets the field dimensions. Both must be at least 4.
func WithSize(width, height int) Option {
	if width < 4 || height < 4 {
		panic(fmt.Sprintf("engine: field %dx%d is smaller than 4x4", width, height))
	}
	return func(p *Playfield) {
		p.width = width
		p.height = height
	}
}

// WithRowBump enables the extra rotation attempts one row lower.
func WithRowBump(on bool) Option {
	return func(p *Playfield) {
		p.rowBump = on
	}
}

// NewPlayfield creates an empty 10x20 playfield fed by src.
// The active piece and next piece are drawn from src.
func NewPlayfield(src Source, opts ...Option) *Playfield {
	p := &Playfield{
		width:  10,
		height: 20,
		src:    src,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.field = NewSpace(Pivot{}, 0, 0)
	p.rows = make([]int, p.height+Overhang+1)
	for r := range p.drops {
		p.drops[r] = make([]int, p.width+Overhang+1)
	}
	p.buildBorder()
	p.next = src.Next()
	p.SetActivePiece(src.Next())
	return p
}

// Reset empties the field and starts over: the next piece becomes
// active, the hold slot is cleared and a new next piece is drawn.
func (p *Playfield) Reset() []Event {
	p.field.Clear()
	p.buildBorder()
	clear(p.rows)

	var events []Event
	events = append(events, p.SetActivePiece(p.next)...)
	events = append(events, p.SetHold(0, false)...)
	events = append(events, p.SetNext(p.src.Next())...)
	return events
}

// buildBorder inserts the wall and floor sentinels.
func (p *Playfield) buildBorder() {
	for y := -Overhang; y < p.height; y++ {
		p.field.Insert(-1, y)
	}
	for x := -1; x < p.width; x++ {
		p.field.Insert(x, p.height)
	}
	for y := p.height; y >= -Overhang; y-- {
		p.field.Insert(p.width, y)
	}
}

// Width returns the number of columns.
func (p *Playfield) Width() int { return p.width }

// Height returns the number of visible rows.
func (p *Playfield) Height() int { return p.height }

// Field returns the locked cells including the border. Callers must not mutate it.
func (p *Playfield) Field() *Space { return p.field }

// RowCount returns the number of locked cells in row y.
func (p *Playfield) RowCount(y int) int {
	i := y + Overhang
	if i < 0 || i >= len(p.rows) {
		return 0
	}
	return p.rows[i]
}

// Active returns the kind of the falling piece.
func (p *Playfield) Active() Kind { return p.active }

// Cursor returns the falling piece's position.
func (p *Playfield) Cursor() Cursor { return p.cursor }

// Hold returns the held kind, if any.
func (p *Playfield) Hold() (Kind, bool) { return p.hold, p.hasHold }

// HoldUsed reports whether hold was already used for the current piece.
func (p *Playfield) HoldUsed() bool { return p.holdUsed }

// Next returns the upcoming kind.
func (p *Playfield) Next() Kind { return p.next }

// Spawn returns the spawn cursor.
func (p *Playfield) Spawn() Cursor {
	return Cursor{X: p.width/2 - 2, Y: SpawnRow}
}

// Placement returns the cursor together with its landing row.
func (p *Playfield) Placement() Placement {
	return Placement{Cursor: p.cursor, Ghost: p.DropRow(p.cursor.X, p.cursor.R)}
}

// PieceCells returns the absolute cells of kind k at cursor c.
func PieceCells(k Kind, c Cursor) []Cell {
	offsets := k.Offsets(c.R)
	out := make([]Cell, len(offsets))
	for i, o := range offsets {
		out[i] = Cell{X: c.X + o.X, Y: c.Y + o.Y}
	}
	return out
}

// SetActivePiece makes k the falling piece at the spawn position and
// invalidates the drop-point cache.
func (p *Playfield) SetActivePiece(k Kind) []Event {
	p.active = k
	p.cursor = p.Spawn()
	p.invalidateDrops()
	return []Event{{Type: EventSpawned, Kind: k, To: p.Placement()}}
}

// SetHold replaces the hold slot. ok=false empties it and re-enables hold.
func (p *Playfield) SetHold(k Kind, ok bool) []Event {
	p.hold = k
	p.hasHold = ok
	if !ok {
		p.holdUsed = false
	}
	return []Event{{Type: EventHoldChanged, Kind: k, Empty: !ok}}
}

// SetNext replaces the next slot.
func (p *Playfield) SetNext(k Kind) []Event {
	p.next = k
	return []Event{{Type: EventNextChanged, Kind: k}}
}

// moveTo places the cursor and reports the change.
func (p *Playfield) moveTo(c Cursor) []Event {
	from := p.Placement()
	p.cursor = c
	return []Event{{Type: EventMoved, Kind: p.active, From: from, To: p.Placement()}}
}

// Shift moves the piece dx columns when the target is legal.
func (p *Playfield) Shift(dx int) (bool, []Event) {
	c := p.cursor
	if !p.IsLegal(c.X+dx, c.Y, c.R) {
		return false, nil
	}
	c.X += dx
	return true, p.moveTo(c)
}

// SoftDrop moves the piece down one row unless it is resting.
func (p *Playfield) SoftDrop() (bool, []Event) {
	c := p.cursor
	if p.DropRow(c.X, c.R) == c.Y {
		return false, nil
	}
	c.Y++
	return true, p.moveTo(c)
}

// HardDrop moves the piece straight to its resting row. The caller is
// expected to follow with MoveDown to lock it.
func (p *Playfield) HardDrop() []Event {
	c := p.cursor
	d := p.DropRow(c.X, c.R)
	if d == c.Y || d == SpawnRow {
		return nil
	}
	c.Y = d
	return p.moveTo(c)
}

// Rotate turns the piece by turn quarter turns using the kick order.
func (p *Playfield) Rotate(turn int) (bool, []Event) {
	c, ok := p.TryRotate(p.cursor.X, p.cursor.Y, p.cursor.R, turn)
	if !ok {
		return false, nil
	}
	return true, p.moveTo(c)
}

// StashPiece swaps the active piece with the hold slot. On the first
// hold the next piece is promoted. It fails when hold was already used
// for this piece.
func (p *Playfield) StashPiece() (bool, []Event) {
	if p.holdUsed {
		return false, nil
	}

	events := []Event{{Type: EventStowed, Kind: p.active, From: p.Placement()}}
	leaving := p.active
	incoming := p.next
	if p.hasHold {
		incoming = p.hold
	} else {
		events = append(events, p.SetNext(p.src.Next())...)
	}
	events = append(events, p.SetHold(leaving, true)...)
	events = append(events, p.SetActivePiece(incoming)...)
	p.holdUsed = true
	return true, events
}

// MoveDown applies one gravity step: fall one row, lock at the resting
// row, or report a blocked spawn.
func (p *Playfield) MoveDown() Fall {
	c := p.cursor
	d := p.DropRow(c.X, c.R)
	switch {
	case d != c.Y && d != SpawnRow:
		c.Y++
		return Fall{Outcome: Moved, Events: p.moveTo(c)}
	case c.Y == SpawnRow:
		return Fall{Outcome: Blocked}
	default:
		return Fall{Outcome: Landed, At: c, Clear: p.Lock()}
	}
}

// Advance promotes next to active and draws a new next piece.
func (p *Playfield) Advance() []Event {
	events := p.SetActivePiece(p.next)
	p.holdUsed = false
	return append(events, p.SetNext(p.src.Next())...)
}
