package blockfall

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(10, 20)

	tests := []struct {
		s      Surface
		x, y   int
		inside bool
	}{
		{SurfaceField, 0, -3, true},
		{SurfaceField, 9, 19, true},
		{SurfaceField, 0, -4, false},
		{SurfaceField, 10, 0, false},
		{SurfaceField, 0, 20, false},
		{SurfaceHold, 3, 3, true},
		{SurfaceHold, 4, 0, false},
		{SurfaceNext, 0, -1, false},
	}
	for _, tt := range tests {
		c.DrawCell(tt.s, tt.x, tt.y, core.ColorRed, 1)
		if got := c.At(tt.s, tt.x, tt.y).Set; got != tt.inside {
			t.Errorf("At(%d, %d, %d).Set = %v, expected %v", tt.s, tt.x, tt.y, got, tt.inside)
		}
	}
}

func TestCanvasRows(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawCell(SurfaceField, 1, 3, core.ColorCyan, 1)
	c.DrawCell(SurfaceField, 2, 3, core.ColorBrightCyan, ghostAlpha)

	img := c.CaptureRow(SurfaceField, 3)
	c.EraseCell(SurfaceField, 1, 3)
	if c.At(SurfaceField, 1, 3).Set {
		t.Error("EraseCell() left the pixel set")
	}

	c.RestoreRow(SurfaceField, 0, img)
	if got := c.At(SurfaceField, 1, 0); got != (Pixel{Color: core.ColorCyan, Alpha: 1, Set: true}) {
		t.Errorf("restored pixel = %+v, expected solid cyan", got)
	}
	if got := c.At(SurfaceField, 2, 0); got.Alpha != ghostAlpha {
		t.Errorf("restored ghost alpha = %v, expected %v", got.Alpha, ghostAlpha)
	}

	// capturing must copy, not alias
	c.DrawCell(SurfaceField, 3, 3, core.ColorRed, 1)
	c.RestoreRow(SurfaceField, 1, img)
	if c.At(SurfaceField, 3, 1).Set {
		t.Error("captured row aliases the canvas")
	}

	c.ClearSurface(SurfaceField)
	for y := -3; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.At(SurfaceField, x, y).Set {
				t.Fatalf("pixel (%d,%d) set after ClearSurface()", x, y)
			}
		}
	}
}
