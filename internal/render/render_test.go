package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

func runningSnapshot() arena.Snapshot {
	return arena.Snapshot{
		State:      arena.StateRunning,
		Difficulty: config.DifficultyHard,
		Width:      20,
		Height:     10,
		Snake:      []arena.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Food:       arena.Food{Position: arena.Position{X: 10, Y: 2}, Kind: arena.FoodBonus, Active: true},
		PowerUp:    arena.PowerUp{Position: arena.Position{X: 0, Y: 0}, Active: true},
		Obstacles:  []arena.Position{{X: 19, Y: 9}},
		Score:      7,
		HighScore:  12,

		WallCollision: true,
	}
}

func TestDrawBoardGlyphs(t *testing.T) {
	snap := runningSnapshot()
	scr := core.NewScreen(80, 24)
	Draw(scr, snap)

	l := NewLayout(80, 20, 10)
	tests := []struct {
		name string
		pos  arena.Position
		want rune
	}{
		{"head", arena.Position{X: 5, Y: 5}, GlyphHead},
		{"body", arena.Position{X: 4, Y: 5}, GlyphBody},
		{"tail", arena.Position{X: 3, Y: 5}, GlyphBody},
		{"bonus food", arena.Position{X: 10, Y: 2}, '$'},
		{"power-up", arena.Position{X: 0, Y: 0}, GlyphPowerUp},
		{"obstacle", arena.Position{X: 19, Y: 9}, GlyphObstacle},
		{"empty", arena.Position{X: 15, Y: 5}, GlyphEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := l.Cell(tc.pos)
			if got := scr.Get(x, y); got != tc.want {
				t.Errorf("cell %v = %q, expected %q", tc.pos, got, tc.want)
			}
		})
	}

	// Border surrounds the playfield
	if got := scr.Get(l.Board.X-1, l.Board.Y-1); got != '┌' {
		t.Errorf("top-left border = %q", got)
	}
	if got := scr.Get(l.Board.Right(), l.Board.Bottom()); got != '┘' {
		t.Errorf("bottom-right border = %q", got)
	}
}

func TestHUD(t *testing.T) {
	snap := runningSnapshot()
	hud := HUD(snap)
	for _, want := range []string{"Score: 7", "High: 12", "Hard", "Wall Collision"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	snap.WallCollision = false
	if !strings.Contains(HUD(snap), "Screen Wrap") {
		t.Errorf("HUD %q should show screen wrap", HUD(snap))
	}
}

func TestPowerUpLine(t *testing.T) {
	snap := runningSnapshot()
	if got := PowerUpLine(snap); got != "" {
		t.Errorf("PowerUpLine() = %q with no effects", got)
	}

	snap.Timers = arena.Timers{SpeedBoost: 4, DoubleScore: 11}
	got := PowerUpLine(snap)
	if !strings.Contains(got, "Speed Boost 4") || !strings.Contains(got, "Double Score 11") {
		t.Errorf("PowerUpLine() = %q", got)
	}
	if strings.Contains(got, "Invincible") {
		t.Errorf("PowerUpLine() = %q lists an inactive effect", got)
	}
}

func TestFoodGlyphs(t *testing.T) {
	tests := []struct {
		kind arena.FoodKind
		want rune
	}{
		{arena.FoodNormal, '*'},
		{arena.FoodBonus, '$'},
		{arena.FoodSpecial, '@'},
	}
	for _, tc := range tests {
		if got := FoodGlyph(tc.kind); got != tc.want {
			t.Errorf("FoodGlyph(%v) = %q, expected %q", tc.kind, got, tc.want)
		}
	}
}

func TestOverlays(t *testing.T) {
	tests := []struct {
		state arena.State
		want  string
	}{
		{arena.StatePaused, "Paused"},
		{arena.StateGameOver, "Game Over"},
		{arena.StateMenu, "SNAKE"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			snap := runningSnapshot()
			snap.State = tc.state
			scr := core.NewScreen(80, 24)
			Draw(scr, snap)
			if !strings.Contains(scr.String(), tc.want) {
				t.Errorf("screen missing %q:\n%s", tc.want, scr.String())
			}
		})
	}

	scr := core.NewScreen(80, 24)
	Draw(scr, runningSnapshot())
	for _, unwanted := range []string{"Paused", "Game Over"} {
		if strings.Contains(scr.String(), unwanted) {
			t.Errorf("running frame contains %q", unwanted)
		}
	}
}

func TestMenuListsHighScores(t *testing.T) {
	snap := arena.Snapshot{
		State:      arena.StateMenu,
		Selected:   config.DifficultyMedium,
		Width:      20,
		Height:     10,
		HighScores: map[config.Difficulty]int{config.DifficultyExtreme: 42},
	}
	scr := core.NewScreen(80, 24)
	Draw(scr, snap)

	out := scr.String()
	if !strings.Contains(out, "> 2. Medium") {
		t.Errorf("selected difficulty not marked:\n%s", out)
	}
	if !strings.Contains(out, "high 42") {
		t.Errorf("Extreme high score missing:\n%s", out)
	}
}

func TestWindowTooSmall(t *testing.T) {
	scr := core.NewScreen(20, 8)
	Draw(scr, runningSnapshot())
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("expected a resize hint:\n%s", scr.String())
	}
}
