package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/session"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScoreboard
)

// AppModel manages the full flow: menu -> game -> menu, plus the scoreboard.
// It is the top-level model for local play and for SSH sessions.
type AppModel struct {
	env      registry.Env
	config   core.RuntimeConfig
	session  *session.Session
	renderer *ScreenRenderer
	view     view
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	quitting bool
}

// NewAppModel creates the app model. When env.Start is set the menu is skipped.
func NewAppModel(env registry.Env, r *ScreenRenderer) AppModel {
	if r == nil {
		r = NewScreenRenderer(nil)
	}
	m := AppModel{
		env:      env,
		config:   env.Runtime,
		session:  env.NewSession(),
		renderer: r,
	}
	if env.Start != nil {
		m.startGame(*env.Start)
	} else {
		m.openMenu()
	}
	return m
}

func (m *AppModel) highScores() map[config.Difficulty]int {
	return m.session.Snapshot().HighScores
}

func (m *AppModel) openMenu() {
	m.view = viewMenu
	m.menu = NewMenuModel(m.env.Rules.Difficulties, m.highScores(), m.session.Engine().Selected(), m.config.ScreenW, m.config.ScreenH)
}

func (m *AppModel) openScoreboard() {
	history, _ := m.env.Keeper.(History)
	m.view = viewScoreboard
	m.board = NewScoreboardModel(history, m.highScores(), m.session.Engine().Selected(), m.config.ScreenW, m.config.ScreenH)
}

func (m *AppModel) startGame(d config.Difficulty) tea.Cmd {
	m.session.StartWith(d)
	m.view = viewGame
	m.game = NewGameModel(m.session, m.config, m.renderer)
	return m.game.Init()
}

// Init initializes the current view.
func (m AppModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return nil
}

// Update routes messages to the active view and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.openScoreboard()
		return m, nil
	case m.menu.Selected() != nil:
		cmd := m.startGame(*m.menu.Selected())
		return m, cmd
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

// View renders the active view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Session returns the session driven by this model.
func (m AppModel) Session() *session.Session {
	return m.session
}
