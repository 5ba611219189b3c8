// Package engine implements the pure rules of the falling-block game:
// the occupancy grid, the piece catalog, the bag randomizer, collision
// and kick resolution, drop-point caching and line clearing.
// It has no knowledge of timing, rendering or input devices.
package engine

import (
	"slices"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Cell is a grid coordinate. X grows to the right, Y grows downward;
// negative Y lies above the visible field.
type Cell struct {
	X, Y int
}

// Pivot is a rotation center stored at double resolution, so a pivot on
// a half cell such as (1.5, 2.5) is represented exactly as {3, 5}.
type Pivot struct {
	X2, Y2 int
}

// PivotAt builds a pivot from doubled coordinates.
func PivotAt(x2, y2 int) Pivot {
	return Pivot{X2: x2, Y2: y2}
}

// Coords returns the pivot in cell units.
func (p Pivot) Coords() (float64, float64) {
	return float64(p.X2) / 2, float64(p.Y2) / 2
}

// Space is a set of cells with a pivot and a pair of colors.
// It models both the locked field and a single piece shape.
type Space struct {
	cells map[Cell]struct{}
	pivot Pivot
	color core.Color
	light core.Color
}

// NewSpace creates a space holding the given cells.
func NewSpace(pivot Pivot, color, light core.Color, cells ...Cell) *Space {
	s := &Space{
		cells: make(map[Cell]struct{}, len(cells)),
		pivot: pivot,
		color: color,
		light: light,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Contains reports whether (x, y) is occupied.
func (s *Space) Contains(x, y int) bool {
	_, ok := s.cells[Cell{X: x, Y: y}]
	return ok
}

// Insert marks (x, y) as occupied.
func (s *Space) Insert(x, y int) {
	s.cells[Cell{X: x, Y: y}] = struct{}{}
}

// Remove clears (x, y). It returns false when the cell was not occupied.
func (s *Space) Remove(x, y int) bool {
	c := Cell{X: x, Y: y}
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// Len returns the number of occupied cells.
func (s *Space) Len() int {
	return len(s.cells)
}

// Clear removes every cell.
func (s *Space) Clear() {
	clear(s.cells)
}

// Cells returns a snapshot of the occupied cells ordered by row, then column.
func (s *Space) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

// Pivot returns the rotation center.
func (s *Space) Pivot() Pivot { return s.pivot }

// Color returns the primary color.
func (s *Space) Color() core.Color { return s.color }

// Light returns the light color used for previews and flashes.
func (s *Space) Light() core.Color { return s.light }

// Rotated returns a new space turned k quarter turns about the pivot.
// With Y growing downward, one quarter turn is counter-clockwise on screen.
// Negative k turns the other way.
func (s *Space) Rotated(k int) *Space {
	out := &Space{
		cells: make(map[Cell]struct{}, len(s.cells)),
		pivot: s.pivot,
		color: s.color,
		light: s.light,
	}
	for c := range s.cells {
		out.cells[rotateCell(c, s.pivot, k)] = struct{}{}
	}
	return out
}

func rotateCell(c Cell, p Pivot, k int) Cell {
	switch mod4(k) {
	case 1:
		return Cell{X: (p.X2 + 2*c.Y - p.Y2) / 2, Y: (p.Y2 - 2*c.X + p.X2) / 2}
	case 2:
		return Cell{X: p.X2 - c.X, Y: p.Y2 - c.Y}
	case 3:
		return Cell{X: (p.X2 - 2*c.Y + p.Y2) / 2, Y: (p.Y2 + 2*c.X - p.X2) / 2}
	default:
		return c
	}
}

func mod4(k int) int {
	return ((k % 4) + 4) % 4
}

func compareCells(a, b Cell) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
