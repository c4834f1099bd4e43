package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/config"
)

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Pick       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Pick}, {k.Select, k.Scoreboard, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down/j", "down")),
		Pick:       key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "play")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel lets the player pick a difficulty.
type MenuModel struct {
	table          config.DifficultyTable
	highScores     map[config.Difficulty]int
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	help           help.Model
	selected       *config.Difficulty
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a menu with the cursor on initial.
func NewMenuModel(table config.DifficultyTable, highScores map[config.Difficulty]int, initial config.Difficulty, width, height int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		table:      table,
		highScores: highScores,
		cursor:     int(initial),
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
		help:       h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Pick) {
		if d, err := config.ParseDifficulty(msg.String()); err == nil {
			m.cursor = int(d)
			m.selected = &d
		}
		return m, nil
	}

	count := len(config.AllDifficulties())
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + count - 1) % count
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % count
	case key.Matches(msg, m.keys.Select):
		d := config.Difficulty(m.cursor)
		m.selected = &d
	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range config.AllDifficulties() {
		rule := m.table.For(d)
		border := "screen wrap"
		if rule.WallCollision {
			border = "walls"
		}
		line := fmt.Sprintf("%d. %-8s %4dms  %-11s  best %d", i+1, d, rule.IntervalMS, border, m.highScores[d])
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen difficulty, or nil if still choosing.
func (m MenuModel) Selected() *config.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
