package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

type selectModel struct {
	title     string
	options   []string
	cursor    int
	done      bool
	cancelled bool
}

func newSelectModel(title string, options []string) selectModel {
	return selectModel{
		title:   title,
		options: options,
	}
}

// Init implements tea.Model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and acceptance.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	switch keyMsg.String() {
	case "k":
		m.moveCursor(-1)
	case "j":
		m.moveCursor(1)
	}

	return m, nil
}

func (m *selectModel) moveCursor(delta int) {
	if len(m.options) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.options) - 1
	}
	if m.cursor >= len(m.options) {
		m.cursor = 0
	}
}

// View renders the list, or the chosen entry once the prompt resolves.
func (m selectModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return fmt.Sprintf("%s %s %s\n",
			styles.SuccessText.Render(styles.CheckMark),
			m.title,
			styles.MutedText.Render(m.options[m.cursor]),
		)
	}

	var b strings.Builder

	b.WriteString(styles.Bold.Render(m.title))
	b.WriteString("\n")

	for i, opt := range m.options {
		cursor := "  "
		style := styles.MutedText
		if i == m.cursor {
			cursor = styles.Cursor.Render(styles.CursorIndicator) + " "
			style = styles.Selected
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(opt))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpText.Render("arrows to navigate, enter to select, ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}

// Select shows a single-choice list and returns the index of the chosen
// option.
func Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select prompt requires at least one option")
	}

	final, err := run(newSelectModel(title, options))
	if err != nil {
		return 0, fmt.Errorf("select prompt failed; %w", err)
	}

	m := final.(selectModel)
	if m.cancelled {
		return 0, ErrCancelled
	}

	return m.cursor, nil
}
