package tui

import (
	"strings"
	"testing"

	"github.com/bricksmash/bricksmash/internal/core"
	"github.com/bricksmash/bricksmash/internal/sim"
)

func newTestGame(t *testing.T) *sim.Game {
	t.Helper()
	g := sim.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestRendererDrawsPlayfield(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	NewRenderer().Draw(g.World(), screen)
	out := screen.String()

	for _, want := range []struct {
		glyph rune
		what  string
	}{
		{BallGlyph, "ball"},
		{WallGlyph, "walls or blocks"},
		{HazardGlyph, "hazard strip"},
		{PaddleGlyph, "paddle"},
	} {
		if !strings.ContainsRune(out, want.glyph) {
			t.Errorf("rendered screen missing %s glyph %q", want.what, want.glyph)
		}
	}

	if !strings.Contains(screen.Row(0), "SCORE 0") {
		t.Errorf("HUD row missing score readout: %q", screen.Row(0))
	}
	if strings.Contains(screen.Row(0), "PAUSED") {
		t.Error("HUD shows PAUSED while running")
	}
}

func TestRendererPausedBanner(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	NewRenderer().Draw(g.World(), screen)

	if !strings.Contains(screen.Row(0), "PAUSED") {
		t.Errorf("HUD row missing pause banner: %q", screen.Row(0))
	}
}

func TestRendererVerticalOrientation(t *testing.T) {
	// World y grows upward, screen y grows downward: the block grid must
	// land above the paddle on screen.
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	NewRenderer().Draw(g.World(), screen)

	// Blocks share their glyph with the walls, so tell them apart by color.
	paddleRow, enemyTopRow := -1, -1
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune == PaddleGlyph {
				paddleRow = y
			}
			if enemyTopRow < 0 && cell.Rune == EnemyGlyph && cell.Color == core.ColorRed {
				enemyTopRow = y
			}
		}
	}

	if paddleRow < 0 {
		t.Fatal("paddle not rendered")
	}
	if enemyTopRow < 0 {
		t.Fatal("no block glyphs rendered")
	}
	if enemyTopRow >= paddleRow {
		t.Errorf("blocks at row %d should be above paddle at row %d", enemyTopRow, paddleRow)
	}
}

func TestRendererTinyScreen(t *testing.T) {
	g := newTestGame(t)

	// Degenerate sizes must not panic.
	for _, dims := range [][2]int{{1, 1}, {0, 0}, {5, 1}} {
		screen := core.NewScreen(dims[0], dims[1])
		NewRenderer().Draw(g.World(), screen)
	}
}
