// Package render draws engine snapshots into a core.Screen.
// Every front-end presents the same buffer; only the output device differs.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// Glyphs used on the board.
const (
	GlyphHead     = 'O'
	GlyphBody     = 'o'
	GlyphObstacle = 'X'
	GlyphPowerUp  = 'P'
	GlyphEmpty    = ' '
)

// Rows reserved above the board: HUD, power-up line, top border.
const hudRows = 2

// HelpLine lists the in-game controls.
const HelpLine = "arrows/wasd move  p pause  t walls  r restart  b menu  q quit"

// FoodGlyph returns the board glyph of a food kind.
func FoodGlyph(k arena.FoodKind) rune {
	switch k {
	case arena.FoodBonus:
		return '$'
	case arena.FoodSpecial:
		return '@'
	default:
		return '*'
	}
}

// FoodColor returns the color of a food kind.
func FoodColor(k arena.FoodKind) core.Color {
	switch k {
	case arena.FoodBonus:
		return core.ColorBrightYellow
	case arena.FoodSpecial:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightRed
	}
}

// MinSize returns the smallest screen that fits a board of the given size.
func MinSize(boardW, boardH int) (w, h int) {
	return max(boardW+2, len(HelpLine)), boardH + hudRows + 3
}

// Layout places the board on the screen.
type Layout struct {
	Board core.Rect // Playfield cells, border excluded
}

// NewLayout centers the board horizontally below the HUD.
func NewLayout(screenW, boardW, boardH int) Layout {
	x := max((screenW-(boardW+2))/2, 0) + 1
	return Layout{Board: core.NewRect(x, hudRows+1, boardW, boardH)}
}

// Cell converts a board position into screen coordinates.
func (l Layout) Cell(p arena.Position) (x, y int) {
	return l.Board.X + p.X, l.Board.Y + p.Y
}

// Draw renders a complete frame.
func Draw(dst *core.Screen, snap arena.Snapshot) {
	dst.Clear()

	minW, minH := MinSize(snap.Width, snap.Height)
	if dst.Width() < minW || dst.Height() < minH {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	if snap.State == arena.StateMenu && len(snap.Snake) == 0 {
		drawMenu(dst, snap)
		return
	}

	l := NewLayout(dst.Width(), snap.Width, snap.Height)
	drawHUD(dst, snap)
	drawBoard(dst, l, snap)
	dst.DrawTextColored(max((dst.Width()-len(HelpLine))/2, 0), l.Board.Bottom()+1, HelpLine, core.ColorGray)

	switch snap.State {
	case arena.StateMenu:
		drawMenu(dst, snap)
	case arena.StatePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case arena.StateGameOver:
		drawBox(dst, []string{
			"Game Over",
			fmt.Sprintf("Score: %d  High: %d", snap.Score, snap.HighScore),
			"",
			"R restart  B menu  Q quit",
		})
	}
}

// HUD returns the status line.
func HUD(snap arena.Snapshot) string {
	border := "Screen Wrap"
	if snap.WallCollision {
		border = "Wall Collision"
	}
	return fmt.Sprintf(" Score: %d  High: %d  %s  %s", snap.Score, snap.HighScore, snap.Difficulty, border)
}

// PowerUpLine lists active effects with their remaining ticks.
func PowerUpLine(snap arena.Snapshot) string {
	active := snap.ActivePowerUps()
	if len(active) == 0 {
		return ""
	}
	parts := make([]string, 0, len(active))
	for _, k := range active {
		parts = append(parts, fmt.Sprintf("%s %d", k.Label(), snap.Timers.Get(k)))
	}
	return " " + strings.Join(parts, "  ")
}

func drawHUD(dst *core.Screen, snap arena.Snapshot) {
	dst.DrawText(0, 0, HUD(snap))
	dst.DrawTextColored(0, 1, PowerUpLine(snap), core.ColorBrightCyan)
}

func drawBoard(dst *core.Screen, l Layout, snap arena.Snapshot) {
	borderColor := core.ColorGray
	if snap.WallCollision {
		borderColor = core.ColorRed
	}
	dst.DrawBoxColored(core.NewRect(l.Board.X-1, l.Board.Y-1, l.Board.W+2, l.Board.H+2), borderColor)

	for _, o := range snap.Obstacles {
		x, y := l.Cell(o)
		dst.SetColored(x, y, GlyphObstacle, core.ColorWhite)
	}

	if snap.Food.Active {
		x, y := l.Cell(snap.Food.Position)
		dst.SetColored(x, y, FoodGlyph(snap.Food.Kind), FoodColor(snap.Food.Kind))
	}
	if snap.PowerUp.Active {
		x, y := l.Cell(snap.PowerUp.Position)
		dst.SetColored(x, y, GlyphPowerUp, core.ColorBrightCyan)
	}

	bodyColor := core.ColorGreen
	if snap.Timers.Active(arena.PowerUpInvincible) {
		bodyColor = core.ColorBrightBlue
	}
	// Tail first so the head wins on overlap
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := l.Cell(snap.Snake[i])
		if i == 0 {
			dst.SetColored(x, y, GlyphHead, core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, GlyphBody, bodyColor)
		}
	}
}

// drawMenu draws the difficulty picker with per-difficulty high scores.
func drawMenu(dst *core.Screen, snap arena.Snapshot) {
	lines := []string{"SNAKE", ""}
	for i, d := range config.AllDifficulties() {
		marker := "  "
		if d == snap.Selected {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %-8s high %d", marker, i+1, d, snap.HighScores[d]))
	}
	lines = append(lines, "", "1-4 select  enter start  q quit")
	drawBox(dst, lines)
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	drawBox(dst, []string{line1, "", line2})
}

func drawBox(dst *core.Screen, lines []string) {
	width := 0
	for _, s := range lines {
		width = max(width, len([]rune(s)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), GlyphEmpty)
	dst.DrawBoxColored(box, core.ColorYellow)
	for i, s := range lines {
		dst.DrawTextCentered(box.Y+1+i, s)
	}
}
