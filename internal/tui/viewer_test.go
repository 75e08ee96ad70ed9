package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := NewModel("chatstat", "content")
		updated, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Errorf("key %q: no command, want tea.Quit", k)
			continue
		}
		if !updated.(Model).quitting {
			t.Errorf("key %q: quitting = false, want true", k)
		}
	}
}

func TestModel_WindowSizeInitializesViewport(t *testing.T) {
	m := NewModel("chatstat", "line1\nline2")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	got := updated.(Model)
	if !got.ready {
		t.Fatal("ready = false after window size")
	}
	if got.viewport.Height != 22 {
		t.Errorf("viewport height = %d, want 22 (minus header and footer)", got.viewport.Height)
	}
}

func TestModel_ViewContainsContent(t *testing.T) {
	m := NewModel("chatstat", "hello report")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := updated.(Model).View()
	if !strings.Contains(view, "hello report") {
		t.Error("view missing report content")
	}
	if !strings.Contains(view, "chatstat") {
		t.Error("view missing title")
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := NewModel("chatstat", "content")
	if got := m.View(); got != "" {
		t.Errorf("View before ready = %q, want empty", got)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
