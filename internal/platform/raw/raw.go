// Package raw provides a tcell front-end that writes cells straight to the
// terminal without a Bubble Tea program. It uses the renderer's own menu.
package raw

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/render"
	"github.com/vovakirdan/snake-arena/internal/session"
)

// ID is the registry identifier of the tcell front-end.
const ID = "raw"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return &Frontend{}
	})
}

// colorOf maps a cell color to the terminal palette.
func colorOf(c core.Color) tcell.Color {
	if code := c.ANSI(); code >= 0 {
		return tcell.PaletteColor(code)
	}
	return tcell.ColorDefault
}

// Frontend runs the arena on a tcell screen.
type Frontend struct{}

// ID returns the registry identifier.
func (f *Frontend) ID() string { return ID }

// Title returns a human-readable description.
func (f *Frontend) Title() string { return "Direct tcell terminal renderer" }

// Run opens the terminal and blocks until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("cannot initialise terminal: %w", err)
	}
	defer scr.Fini()

	return Loop(ctx, scr, env)
}

// Loop drives a session on an initialised screen. Input collected between two
// frames is applied in arrival order before the frame advances the session.
func Loop(ctx context.Context, scr tcell.Screen, env registry.Env) error {
	s := env.NewSession()
	if env.Start != nil {
		s.StartWith(*env.Start)
	}

	fps := env.Runtime.TickRate
	if fps <= 0 {
		fps = 60
	}

	w, h := scr.Size()
	buf := core.NewScreen(w, h)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frame := core.NewInputFrame()
	last := time.Now()
	draw(scr, buf, s)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				buf.Resize(ev.Size())
				scr.Sync()
			case *tcell.EventKey:
				action, quit := MapKey(ev)
				if quit {
					return nil
				}
				frame.Set(action)
			}

		case now := <-ticker.C:
			for _, a := range frame.Actions {
				s.Handle(a)
			}
			frame.Clear()
			s.Advance(now.Sub(last))
			last = now
			draw(scr, buf, s)
		}
	}
}

// MapKey translates a tcell key event to a session action.
func MapKey(ev *tcell.EventKey) (action core.Action, isQuit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEnter:
		return core.ActionConfirm, false
	case tcell.KeyEscape:
		return core.ActionBack, false
	case tcell.KeyRune:
	default:
		return core.ActionNone, false
	}

	switch ev.Rune() {
	case 'q':
		return core.ActionQuit, true
	case 'w', 'k':
		return core.ActionUp, false
	case 's', 'j':
		return core.ActionDown, false
	case 'a', 'h':
		return core.ActionLeft, false
	case 'd', 'l':
		return core.ActionRight, false
	case 'p', ' ':
		return core.ActionPause, false
	case 't':
		return core.ActionToggleWalls, false
	case '1':
		return core.ActionDifficulty1, false
	case '2':
		return core.ActionDifficulty2, false
	case '3':
		return core.ActionDifficulty3, false
	case '4':
		return core.ActionDifficulty4, false
	case 'b':
		return core.ActionBack, false
	case 'r':
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// draw renders the session into buf and copies it to the terminal.
func draw(scr tcell.Screen, buf *core.Screen, s *session.Session) {
	render.Draw(buf, s.Snapshot())
	Blit(scr, buf)
	scr.Show()
}

// Blit copies a screen buffer to a tcell screen.
func Blit(scr tcell.Screen, buf *core.Screen) {
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			scr.SetContent(x, y, c.Rune, nil, tcell.StyleDefault.Foreground(colorOf(c.Color)))
		}
	}
}
