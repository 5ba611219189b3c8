package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	GhostChar  = '░'
	EmptyChar  = '·'
	WallVert   = '│'
	WallFloor  = '─'
	WallBottom = '└'
	WallCorner = '┘'
)

// Layout in screen columns. Every cell is two columns wide.
const (
	cellW   = 2
	panelW  = 4*cellW + 2 // piece box plus border
	panelH  = 4 + 2
	gap     = 2
	bannerY = 8 // rows below the top of the visible field
)

// layoutSize returns the screen area needed to draw a field.
func layoutSize(f config.FieldConfig) (w, h int) {
	return 2*panelW + 2*gap + f.Width*cellW + 2, f.Height + engine.Overhang + 1
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := layoutSize(g.cfg.Field)
	if dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", w, h))
		return
	}

	x0 := (dst.Width() - w) / 2
	y0 := (dst.Height() - h) / 2
	fx := x0 + panelW + gap
	rx := fx + g.cfg.Field.Width*cellW + 2 + gap

	g.renderPanel(dst, x0, y0, "HOLD", SurfaceHold)
	g.renderField(dst, fx, y0)
	g.renderPanel(dst, rx, y0, "NEXT", SurfaceNext)
	g.renderStats(dst, rx, y0+panelH+1)
	g.renderBanner(dst, fx+1, y0+engine.Overhang+bannerY)
}

// renderField draws the walls, the floor and every canvas pixel. The
// overhang rows above the field are drawn without a ceiling.
func (g *Game) renderField(dst *core.Screen, x0, y0 int) {
	width, height := g.cfg.Field.Width, g.cfg.Field.Height
	right := x0 + 1 + width*cellW

	for y := -engine.Overhang; y < height; y++ {
		sy := y0 + y + engine.Overhang
		dst.SetColored(x0, sy, WallVert, core.ColorGray)
		dst.SetColored(right, sy, WallVert, core.ColorGray)
		for x := 0; x < width; x++ {
			drawPixel(dst, x0+1+x*cellW, sy, g.canvas.At(SurfaceField, x, y), y >= 0)
		}
	}

	floor := y0 + height + engine.Overhang
	dst.SetColored(x0, floor, WallBottom, core.ColorGray)
	for x := x0 + 1; x < right; x++ {
		dst.SetColored(x, floor, WallFloor, core.ColorGray)
	}
	dst.SetColored(right, floor, WallCorner, core.ColorGray)
}

// renderPanel draws a titled 4x4 preview box.
func (g *Game) renderPanel(dst *core.Screen, x0, y0 int, title string, s Surface) {
	dst.DrawBox(core.NewRect(x0, y0, panelW, panelH), core.ColorGray)
	dst.DrawTextColored(x0+(panelW-len(title))/2, y0, title, core.ColorWhite)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			drawPixel(dst, x0+1+x*cellW, y0+1+y, g.canvas.At(s, x, y), false)
		}
	}
}

func (g *Game) renderStats(dst *core.Screen, x0, y0 int) {
	st := g.State()
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%08d", st.Score)},
		{"LINES", fmt.Sprintf("%d", st.Lines)},
		{"TIME", formatClock(st.Elapsed)},
	}
	for i, r := range rows {
		dst.DrawTextColored(x0, y0+3*i, r.label, core.ColorGray)
		dst.DrawTextColored(x0, y0+3*i+1, r.value, core.ColorBrightWhite)
	}
	if combo := g.loop.Combo(); combo > 0 {
		dst.DrawTextColored(x0, y0+3*len(rows), fmt.Sprintf("COMBO x%d", combo), core.ColorBrightYellow)
	}
}

// renderBanner writes the loop's banner centered over the field.
func (g *Game) renderBanner(dst *core.Screen, x0, y int) {
	banner, count, fading := g.loop.Banner()

	var lines []string
	color := core.ColorBrightWhite
	switch banner {
	case BannerReady:
		lines = []string{" PRESS ENTER ", " N: NEW GAME "}
	case BannerCountdown:
		lines = []string{fmt.Sprintf(" %d ", count)}
		if fading {
			color = core.ColorGray
		}
	case BannerPaused:
		lines = []string{" PAUSED "}
	case BannerGameOver:
		lines = []string{" GAME OVER "}
		color = core.ColorBrightRed
	case BannerPerfectClear:
		lines = []string{" PERFECT CLEAR "}
		color = core.ColorBrightYellow
	default:
		return
	}

	width := g.cfg.Field.Width * cellW
	for i, text := range lines {
		n := len([]rune(text))
		if n > width {
			continue
		}
		dst.DrawTextColored(x0+(width-n)/2, y+i, text, color)
	}
}

// renderOverlay draws centered messages on an otherwise empty screen.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, title)
	dst.DrawTextCentered(cy+1, subtitle)
}

// drawPixel draws one two-column cell. Translucent pixels are ghosts.
func drawPixel(dst *core.Screen, x, y int, p Pixel, dots bool) {
	switch {
	case p.Set && p.Alpha >= 1:
		dst.SetColored(x, y, BlockChar, p.Color)
		dst.SetColored(x+1, y, BlockChar, p.Color)
	case p.Set:
		dst.SetColored(x, y, GhostChar, p.Color)
		dst.SetColored(x+1, y, GhostChar, p.Color)
	case dots:
		dst.SetColored(x+1, y, EmptyChar, core.ColorDarkGray)
	}
}
