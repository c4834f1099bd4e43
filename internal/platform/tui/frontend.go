package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/registry"
)

// ID is the registry identifier of the Bubble Tea front-end.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend runs the arena in the local terminal through Bubble Tea.
type Frontend struct{}

// ID returns the registry identifier.
func (f *Frontend) ID() string { return ID }

// Title returns a human-readable description.
func (f *Frontend) Title() string { return "Bubble Tea terminal UI" }

// Run blocks until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	model := NewAppModel(env, nil)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
