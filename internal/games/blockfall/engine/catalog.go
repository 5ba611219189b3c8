package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindZ
	KindO
	KindT
	KindS
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every kind in catalog order.
var Kinds = [KindCount]Kind{KindI, KindJ, KindZ, KindO, KindT, KindS, KindL}

// String returns the conventional letter of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return "IJZOTSL"[k : k+1]
}

// shapes holds the catalog; entries are shared and never mutated.
var shapes = [KindCount]*Space{
	KindI: NewSpace(PivotAt(3, 3), core.ColorRed, core.ColorBrightRed,
		Cell{1, 0}, Cell{1, 1}, Cell{1, 2}, Cell{1, 3}),
	KindJ: NewSpace(PivotAt(2, 4), core.ColorMagenta, core.ColorBrightMagenta,
		Cell{2, 1}, Cell{1, 1}, Cell{1, 2}, Cell{1, 3}),
	KindZ: NewSpace(PivotAt(2, 4), core.ColorBlue, core.ColorBrightBlue,
		Cell{2, 1}, Cell{2, 2}, Cell{1, 2}, Cell{1, 3}),
	KindO: NewSpace(PivotAt(3, 5), core.ColorCyan, core.ColorBrightCyan,
		Cell{2, 3}, Cell{2, 2}, Cell{1, 2}, Cell{1, 3}),
	KindT: NewSpace(PivotAt(4, 4), core.ColorGreen, core.ColorBrightGreen,
		Cell{2, 3}, Cell{2, 2}, Cell{1, 2}, Cell{2, 1}),
	KindS: NewSpace(PivotAt(4, 4), core.ColorYellow, core.ColorBrightYellow,
		Cell{2, 3}, Cell{2, 2}, Cell{1, 2}, Cell{1, 1}),
	KindL: NewSpace(PivotAt(4, 4), core.ColorOrange, core.ColorPeach,
		Cell{2, 3}, Cell{2, 2}, Cell{2, 1}, Cell{1, 1}),
}

// orientations caches the four rotations of every kind.
var orientations [KindCount][4][]Cell

func init() {
	for _, k := range Kinds {
		for r := 0; r < 4; r++ {
			orientations[k][r] = shapes[k].Rotated(r).Cells()
		}
	}
}

// Shape returns the catalog space of k. Callers must not mutate it.
func (k Kind) Shape() *Space {
	return shapes[k]
}

// Color returns the primary color of k.
func (k Kind) Color() core.Color { return shapes[k].color }

// Light returns the light color of k.
func (k Kind) Light() core.Color { return shapes[k].light }

// Offsets returns the local cells of k turned r quarter turns.
// The returned slice is shared; callers must not modify it.
func (k Kind) Offsets(r int) []Cell {
	return orientations[k][mod4(r)]
}
