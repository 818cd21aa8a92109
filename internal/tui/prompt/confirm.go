package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

type confirmModel struct {
	question   string
	defaultYes bool
	answer     bool
	done       bool
	cancelled  bool
}

func newConfirmModel(question string, defaultYes bool) confirmModel {
	return confirmModel{
		question:   question,
		defaultYes: defaultYes,
	}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update resolves on y, n, or enter (default).
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		m.cancelled = true
		return m, tea.Quit
	}

	if keyMsg.Type == tea.KeyEnter {
		m.answer = m.defaultYes
		m.done = true
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the question with the default-sensitive hint.
func (m confirmModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", styles.Bold.Render(m.question), styles.MutedText.Render(answer))
	}

	hint := "[y/N]"
	if m.defaultYes {
		hint = "[Y/n]"
	}
	return fmt.Sprintf("%s %s ", styles.Bold.Render(m.question), styles.MutedText.Render(hint))
}

// Confirm asks a yes/no question. Enter accepts the default.
func Confirm(question string, defaultYes bool) (bool, error) {
	final, err := run(newConfirmModel(question, defaultYes))
	if err != nil {
		return false, fmt.Errorf("confirm prompt failed; %w", err)
	}

	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}

	return m.answer, nil
}
