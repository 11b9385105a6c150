// Package tui holds the Bubble Tea launcher and the lipgloss renderer used
// to print console screens as ANSI text.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/registry"
)

// MenuOptions preselect the launcher state.
type MenuOptions struct {
	Backend string
	Cols40  bool
	Width   int
	Height  int
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items   []registry.GameInfo
	cursor  int
	backend int
	cols40  bool
	width   int
	height  int

	keys MenuKeyMap
	help help.Model

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style

	quitting bool
	selected *registry.GameInfo
}

// NewMenuModel creates a launcher over every registered game.
func NewMenuModel(opts MenuOptions) MenuModel {
	backend := 0
	for i, b := range config.Backends {
		if b == opts.Backend {
			backend = i
		}
	}
	h := help.New()
	h.ShowAll = false
	return MenuModel{
		items:         registry.List(),
		backend:       backend,
		cols40:        opts.Cols40,
		width:         opts.Width,
		height:        opts.Height,
		keys:          DefaultMenuKeyMap(),
		help:          h,
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		dimStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
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
	n := len(config.Backends)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.backend = (m.backend + n - 1) % n
	case key.Matches(msg, m.keys.Right):
		m.backend = (m.backend + 1) % n
	case key.Matches(msg, m.keys.Cols40):
		m.cols40 = !m.cols40
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.titleStyle.Render("C O N S C A D E"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.ID, item.Title)
		if i == m.cursor {
			line = m.selectedStyle.Render(fmt.Sprintf("> %-8s %s", item.ID, item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	cols := "80"
	if m.cols40 {
		cols = "40"
	}
	status := fmt.Sprintf("backend: < %s >   columns: %s", m.Backend(), cols)
	b.WriteString(centerText(m.dimStyle.Render(status), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Backend returns the selected backend name.
func (m MenuModel) Backend() string {
	return config.Backends[m.backend]
}

// Selected returns the selected game, or nil if none was selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within width, measured in terminal cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the outcome of one launcher run.
type MenuResult struct {
	GameID  string
	Backend string
	Cols40  bool
	Quit    bool
}

// RunMenu runs the launcher until a game is picked or the user quits.
func RunMenu(opts MenuOptions) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes the model state.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Backend: m.Backend(), Cols40: m.cols40}
	if m.quitting || m.selected == nil {
		r.Quit = true
		return r
	}
	r.GameID = m.selected.ID
	return r
}
