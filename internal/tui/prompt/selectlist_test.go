package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSelectModel_Navigation(t *testing.T) {
	m := tea.Model(newSelectModel("Select a project:", []string{"a/one", "b/two", "Skip"}))

	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.(selectModel).cursor != 1 {
		t.Errorf("expected cursor 1 after down, got %d", m.(selectModel).cursor)
	}

	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.(selectModel).cursor != 2 {
		t.Errorf("expected cursor to wrap to 2, got %d", m.(selectModel).cursor)
	}
}

func TestSelectModel_EnterAccepts(t *testing.T) {
	m := tea.Model(newSelectModel("Select:", []string{"one", "two"}))

	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyDown})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	final := updated.(selectModel)
	if !final.done {
		t.Error("expected done after enter")
	}
	if final.cursor != 1 {
		t.Errorf("expected choice 1, got %d", final.cursor)
	}
	if cmd == nil {
		t.Error("expected quit command after enter")
	}
}

func TestSelectModel_CtrlCCancels(t *testing.T) {
	m := tea.Model(newSelectModel("Select:", []string{"one"}))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(selectModel).cancelled {
		t.Error("expected cancelled after ctrl+c")
	}
}

func TestSelectModel_View(t *testing.T) {
	m := newSelectModel("Select a project:", []string{"acme/api", "Skip project selection"})

	view := m.View()
	if !strings.Contains(view, "Select a project:") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "acme/api") || !strings.Contains(view, "Skip project selection") {
		t.Error("view should contain all options")
	}
}

func TestSelect_RequiresOptions(t *testing.T) {
	if _, err := Select("Select:", nil); err == nil {
		t.Error("expected error for empty option list")
	}
}
