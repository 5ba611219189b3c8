package engine

// EventType tells the renderer what part of the playfield changed.
type EventType int

const (
	// EventSpawned: a new active piece appeared at the spawn position.
	EventSpawned EventType = iota
	// EventMoved: the active piece moved From -> To.
	EventMoved
	// EventStowed: the active piece left the field into the hold slot.
	EventStowed
	// EventHoldChanged: the hold slot now shows Kind (or nothing).
	EventHoldChanged
	// EventNextChanged: the next slot now shows Kind.
	EventNextChanged
)

func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventMoved:
		return "moved"
	case EventStowed:
		return "stowed"
	case EventHoldChanged:
		return "hold"
	case EventNextChanged:
		return "next"
	default:
		return "unknown"
	}
}

// Placement is a cursor together with the row its landing preview sits on.
type Placement struct {
	Cursor
	Ghost int
}

// Event is a redraw notification produced by playfield mutations.
type Event struct {
	Type EventType
	Kind Kind
	// Empty is set on EventHoldChanged when the slot was cleared.
	Empty bool
	From  Placement
	To    Placement
}
