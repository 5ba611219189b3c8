package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Pixel is one painted cell of a canvas surface.
type Pixel struct {
	Color core.Color
	Alpha float64
	Set   bool
}

type layer struct {
	w, h int
	top  int // y of the first row
	px   [][]Pixel
}

func newLayer(w, h, top int) *layer {
	l := &layer{w: w, h: h, top: top, px: make([][]Pixel, h)}
	for i := range l.px {
		l.px[i] = make([]Pixel, w)
	}
	return l
}

func (l *layer) row(y int) []Pixel {
	i := y - l.top
	if i < 0 || i >= l.h {
		return nil
	}
	return l.px[i]
}

// Canvas is an in-memory Renderer. The terminal front end reads it back
// through At when composing a frame.
type Canvas struct {
	layers [3]*layer
}

// NewCanvas creates a canvas for a field of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{layers: [3]*layer{
		SurfaceField: newLayer(width, height+engine.Overhang, -engine.Overhang),
		SurfaceHold:  newLayer(4, 4, 0),
		SurfaceNext:  newLayer(4, 4, 0),
	}}
}

// ClearSurface erases every pixel of s.
func (c *Canvas) ClearSurface(s Surface) {
	l := c.layers[s]
	for _, r := range l.px {
		clear(r)
	}
}

// DrawCell paints one cell. Out-of-range cells are ignored.
func (c *Canvas) DrawCell(s Surface, x, y int, col core.Color, alpha float64) {
	if r := c.layers[s].row(y); r != nil && x >= 0 && x < len(r) {
		r[x] = Pixel{Color: col, Alpha: alpha, Set: true}
	}
}

// EraseCell clears one cell.
func (c *Canvas) EraseCell(s Surface, x, y int) {
	if r := c.layers[s].row(y); r != nil && x >= 0 && x < len(r) {
		r[x] = Pixel{}
	}
}

// CaptureRow copies row y.
func (c *Canvas) CaptureRow(s Surface, y int) RowImage {
	r := c.layers[s].row(y)
	if r == nil {
		return []Pixel(nil)
	}
	return append([]Pixel(nil), r...)
}

// RestoreRow writes a captured row back at y.
func (c *Canvas) RestoreRow(s Surface, y int, img RowImage) {
	r := c.layers[s].row(y)
	src, _ := img.([]Pixel)
	if r == nil {
		return
	}
	clear(r)
	copy(r, src)
}

// At returns the pixel at (x, y) of s.
func (c *Canvas) At(s Surface, x, y int) Pixel {
	r := c.layers[s].row(y)
	if r == nil || x < 0 || x >= len(r) {
		return Pixel{}
	}
	return r[x]
}
