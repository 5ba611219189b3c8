package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Surface names one of the drawing areas.
type Surface int

const (
	SurfaceField Surface = iota
	SurfaceHold
	SurfaceNext
)

// RowImage is an opaque copy of one row of a surface.
type RowImage any

// Renderer receives drawing requests from the loop. Field coordinates are
// cells with y starting at -3 (the overhang); hold and next use the 4x4
// piece box.
type Renderer interface {
	ClearSurface(s Surface)
	DrawCell(s Surface, x, y int, c core.Color, alpha float64)
	EraseCell(s Surface, x, y int)
	CaptureRow(s Surface, y int) RowImage
	RestoreRow(s Surface, y int, img RowImage)
}

// NopRenderer ignores every request.
type NopRenderer struct{}

func (NopRenderer) ClearSurface(Surface) {}
func (NopRenderer) DrawCell(Surface, int, int, core.Color, float64) {}
func (NopRenderer) EraseCell(Surface, int, int) {}
func (NopRenderer) CaptureRow(Surface, int) RowImage { return nil }
func (NopRenderer) RestoreRow(Surface, int, RowImage) {}
