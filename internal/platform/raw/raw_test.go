package raw

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	scr.SetSize(80, 24)
	t.Cleanup(scr.Fini)
	return scr
}

func testEnv() registry.Env {
	rules := config.DefaultRules()
	rules.PowerUps.SpawnChance = 0
	return registry.Env{
		Rules:   rules,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action core.Action
		quit   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp, false},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight, false},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft, false},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.ActionDown, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionPause, false},
		{"4", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), core.ActionDifficulty4, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionConfirm, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionBack, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit, true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := MapKey(tc.ev)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestBlitCopiesCells(t *testing.T) {
	scr := simScreen(t)

	buf := core.NewScreen(10, 3)
	buf.SetColored(2, 1, 'O', core.ColorBrightGreen)
	buf.DrawText(0, 0, "hi")
	Blit(scr, buf)
	scr.Show()

	r, _, style, _ := scr.GetContent(2, 1)
	if r != 'O' {
		t.Errorf("cell (2,1) = %q, expected 'O'", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.PaletteColor(10) {
		t.Errorf("foreground = %v, expected %v", fg, tcell.PaletteColor(10))
	}
	if r, _, _, _ := scr.GetContent(1, 0); r != 'i' {
		t.Errorf("cell (1,0) = %q, expected 'i'", r)
	}
}

func TestLoopQuitsOnKey(t *testing.T) {
	scr := simScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := Loop(ctx, scr, testEnv()); err != nil {
		t.Fatalf("Loop() error: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Loop() should return on q before the context expires")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	scr := simScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	env := testEnv()
	d := config.DifficultyEasy
	env.Start = &d

	done := make(chan error, 1)
	go func() { done <- Loop(ctx, scr, env) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Loop() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Loop() did not stop after cancel")
	}
}
