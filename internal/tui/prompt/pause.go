package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

type pauseModel struct {
	message   string
	done      bool
	cancelled bool
}

// Init implements tea.Model.
func (m pauseModel) Init() tea.Cmd {
	return nil
}

// Update resolves on any keypress.
func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		m.cancelled = true
		return m, tea.Quit
	}

	m.done = true
	return m, tea.Quit
}

// View renders the pause message until a key is pressed.
func (m pauseModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return styles.HelpText.Render(m.message) + "\n"
}

// Pause blocks until the user presses any key.
func Pause(message string) error {
	if message == "" {
		message = "Press any key to continue..."
	}

	final, err := run(pauseModel{message: message})
	if err != nil {
		return fmt.Errorf("pause prompt failed; %w", err)
	}

	if final.(pauseModel).cancelled {
		return ErrCancelled
	}

	return nil
}
