package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModel_Yes(t *testing.T) {
	m := tea.Model(newConfirmModel("Proceed?", false))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	final := updated.(confirmModel)

	if !final.done || !final.answer {
		t.Errorf("expected done=true answer=true, got done=%v answer=%v", final.done, final.answer)
	}
}

func TestConfirmModel_No(t *testing.T) {
	m := tea.Model(newConfirmModel("Proceed?", true))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	final := updated.(confirmModel)

	if !final.done || final.answer {
		t.Errorf("expected done=true answer=false, got done=%v answer=%v", final.done, final.answer)
	}
}

func TestConfirmModel_EnterUsesDefault(t *testing.T) {
	cases := []struct {
		name       string
		defaultYes bool
	}{
		{"default yes", true},
		{"default no", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tea.Model(newConfirmModel("Proceed?", tc.defaultYes))

			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			final := updated.(confirmModel)

			if !final.done || final.answer != tc.defaultYes {
				t.Errorf("expected answer=%v, got done=%v answer=%v", tc.defaultYes, final.done, final.answer)
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := tea.Model(newConfirmModel("Proceed?", false))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if updated.(confirmModel).done {
		t.Error("unrelated key should not resolve the prompt")
	}
}

func TestConfirmModel_CtrlCCancels(t *testing.T) {
	m := tea.Model(newConfirmModel("Proceed?", false))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(confirmModel).cancelled {
		t.Error("expected cancelled after ctrl+c")
	}
}

func TestConfirmModel_ViewShowsDefaultHint(t *testing.T) {
	yes := newConfirmModel("Proceed?", true)
	if !strings.Contains(yes.View(), "[Y/n]") {
		t.Error("default-yes view should show [Y/n]")
	}

	no := newConfirmModel("Proceed?", false)
	if !strings.Contains(no.View(), "[y/N]") {
		t.Error("default-no view should show [y/N]")
	}
}
