// Package tui wraps a rendered report in a scrollable full-screen
// viewer for interactive mode.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
		),
	}
}

// Model is the bubbletea model for the report viewer.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	keys     KeyMap
	ready    bool
	quitting bool
}

// NewModel creates a viewer for the given report content.
func NewModel(title, content string) Model {
	return Model{
		title:   title,
		content: content,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerH := 1
		footerH := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerH-footerH)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerH - footerH
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	help := "↑/↓ scroll  g/G top/bottom  q quit "
	title := " " + m.title
	padding := m.viewport.Width - lipgloss.Width(title) - lipgloss.Width(help)
	if padding < 0 {
		padding = 0
	}
	header := headerStyle.Width(m.viewport.Width).Render(
		title + strings.Repeat(" ", padding) + help)

	footer := footerStyle.Render(scrollPercent(m.viewport))

	return header + "\n" + m.viewport.View() + "\n" + footer
}

func scrollPercent(vp viewport.Model) string {
	pct := int(vp.ScrollPercent() * 100)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf(" %d%%", pct)
}

// Run displays the report in an alt-screen viewer and blocks until the
// user quits.
func Run(title, content string) error {
	p := tea.NewProgram(NewModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
