package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/render"
	"github.com/vovakirdan/snake-arena/internal/session"
)

// GameModel presents a running session. Frames arrive at a fixed rate; the
// session decides how many simulation ticks each frame is worth.
type GameModel struct {
	session    *session.Session
	screen     *core.Screen
	renderer   *ScreenRenderer
	keyMapper  *KeyMapper
	fps        int
	lastFrame  time.Time
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps a session that has already started an episode.
func NewGameModel(s *session.Session, cfg core.RuntimeConfig, r *ScreenRenderer) GameModel {
	if r == nil {
		r = NewScreenRenderer(nil)
	}
	return GameModel{
		session:   s,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:  r,
		keyMapper: NewKeyMapper(),
		fps:       cfg.TickRate,
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards mapped actions to the session.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, nil
	}

	m.session.Handle(action)
	if action == core.ActionBack {
		m.backToMenu = true
	}
	return m, nil
}

// handleFrame advances the session by the wall-clock time since the last frame.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.lastFrame.IsZero() {
		m.session.Advance(now.Sub(m.lastFrame))
	}
	m.lastFrame = now
	return m, frameCmd(m.fps)
}

// saveScreenshot writes the current frame as plain text under ~/.snake/screenshots.
func (m *GameModel) saveScreenshot() {
	render.Draw(m.screen, m.session.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current snapshot.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	render.Draw(m.screen, m.session.Snapshot())
	return m.renderer.Render(m.screen)
}

// State returns the engine state.
func (m GameModel) State() arena.State {
	return m.session.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
