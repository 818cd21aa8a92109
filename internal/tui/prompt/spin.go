package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

type spinDoneMsg struct {
	err error
}

type spinModel struct {
	message   string
	spinner   spinner.Model
	fn        func() error
	err       error
	done      bool
	cancelled bool
}

func newSpinModel(message string, fn func() error) spinModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Cursor
	return spinModel{
		message: message,
		spinner: s,
		fn:      fn,
	}
}

// Init starts the spinner and kicks off the background work.
func (m spinModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return spinDoneMsg{err: m.fn()}
		},
	)
}

// Update waits for completion while animating the spinner.
func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View renders the spinner while the work runs; nothing once resolved.
func (m spinModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.spinner.View() + " " + m.message + "\n"
}

// Spin runs fn in the background while showing an animated spinner with the
// given message, then returns fn's error. Ctrl+C abandons the wait and
// returns ErrCancelled.
func Spin(message string, fn func() error) error {
	final, err := run(newSpinModel(message, fn))
	if err != nil {
		return fmt.Errorf("spinner prompt failed; %w", err)
	}

	m := final.(spinModel)
	if m.cancelled {
		return ErrCancelled
	}

	return m.err
}
