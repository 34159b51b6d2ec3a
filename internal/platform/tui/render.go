package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bricksmash/bricksmash/internal/core"
	"github.com/bricksmash/bricksmash/internal/sim"
)

// Glyphs for playfield entities.
const (
	WallGlyph     = '█'
	HazardGlyph   = '▒'
	EnemyGlyph    = '█'
	PaddleGlyph   = '='
	BallGlyph     = '●'
	ParticleGlyph = '*'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Renderer projects the world-unit playfield into a character cell
// buffer. World coordinates are y-up with the origin at the arena
// center; cells are y-down, so the projection flips vertically.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the world into the screen buffer. The buffer is cleared
// first; row 0 carries the HUD, the rest is the playfield scaled to fit.
func (r *Renderer) Draw(w *sim.World, dst *core.Screen) {
	dst.Clear()

	minB, maxB := w.Bounds()
	spanX := maxB.X - minB.X
	spanY := maxB.Y - minB.Y
	fieldH := dst.Height() - hudRows
	if fieldH < 1 || dst.Width() < 1 || spanX <= 0 || spanY <= 0 {
		return
	}

	projX := func(wx float64) int {
		return core.Clamp(int((wx-minB.X)/spanX*float64(dst.Width())), 0, dst.Width()-1)
	}
	projY := func(wy float64) int {
		return hudRows + core.Clamp(int((maxB.Y-wy)/spanY*float64(fieldH)), 0, fieldH-1)
	}

	fill := func(e *sim.Entity, glyph rune) {
		x0 := projX(e.Pos.X - e.Scale.X/2)
		x1 := projX(e.Pos.X + e.Scale.X/2)
		y0 := projY(e.Pos.Y + e.Scale.Y/2)
		y1 := projY(e.Pos.Y - e.Scale.Y/2)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetCell(x, y, glyph, e.Color)
			}
		}
	}

	// Layer order: static arena first, then destructibles, then the
	// moving pieces on top.
	w.Store().Each(sim.TagWall, func(e *sim.Entity) { fill(e, WallGlyph) })
	w.Store().Each(sim.TagHazard, func(e *sim.Entity) { fill(e, HazardGlyph) })
	w.Store().Each(sim.TagEnemy, func(e *sim.Entity) { fill(e, EnemyGlyph) })
	w.Store().Each(sim.TagParticle, func(e *sim.Entity) { fill(e, ParticleGlyph) })
	w.Store().Each(sim.TagPaddle, func(e *sim.Entity) { fill(e, PaddleGlyph) })
	w.Store().Each(sim.TagBall, func(e *sim.Entity) { fill(e, BallGlyph) })

	r.drawHUD(w, dst)
}

// drawHUD writes the score readout and control hints on the reserved top
// row. The score text comes from the scoreboard label entity, keeping the
// display in lockstep with the simulation's own bookkeeping.
func (r *Renderer) drawHUD(w *sim.World, dst *core.Screen) {
	scoreText := "0"
	if board := w.Store().First(sim.TagScoreboard); board != nil {
		scoreText = board.Text
	}
	dst.DrawTextColored(1, 0, "SCORE "+scoreText, core.ColorBrightYellow)

	if w.Phase() == sim.PhasePaused {
		dst.DrawTextCentered(0, "PAUSED")
	}

	hint := "a/d move  1 pause  2 resume  r restart  q quit"
	if x := dst.Width() - len(hint) - 1; x > len("SCORE "+scoreText)+2 {
		dst.DrawTextColored(x, 0, hint, core.ColorGray)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
