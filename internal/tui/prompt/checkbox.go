package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

// CheckboxOption is a single entry in a multi-select list.
type CheckboxOption struct {
	Label   string
	Detail  string
	Checked bool
}

type checkboxModel struct {
	title     string
	options   []CheckboxOption
	cursor    int
	done      bool
	cancelled bool
}

func newCheckboxModel(title string, options []CheckboxOption) checkboxModel {
	return checkboxModel{
		title:   title,
		options: options,
	}
}

// Init implements tea.Model.
func (m checkboxModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling, and acceptance.
func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case tea.KeySpace:
		m.options[m.cursor].Checked = !m.options[m.cursor].Checked
		return m, nil

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

func (m *checkboxModel) moveCursor(delta int) {
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

// View renders the list, or a compact summary once the prompt resolves.
func (m checkboxModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return fmt.Sprintf("%s %s %s\n",
			styles.SuccessText.Render(styles.CheckMark),
			m.title,
			styles.MutedText.Render(fmt.Sprintf("(%d selected)", len(m.checked()))),
		)
	}

	var b strings.Builder

	b.WriteString(styles.Bold.Render(m.title))
	b.WriteString("\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.Cursor.Render(styles.CursorIndicator) + " "
		}

		box := styles.CheckboxUnselected
		label := opt.Label
		if opt.Checked {
			box = styles.Selected.Render(styles.CheckboxSelected)
			label = styles.Selected.Render(label)
		}

		b.WriteString(cursor)
		b.WriteString(box)
		b.WriteString(" ")
		b.WriteString(label)
		if opt.Detail != "" {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(opt.Detail))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpText.Render("space to toggle, enter to confirm, ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m checkboxModel) checked() []int {
	var indices []int
	for i, opt := range m.options {
		if opt.Checked {
			indices = append(indices, i)
		}
	}
	return indices
}

// Checkbox shows a multi-select list and returns the indices of the checked
// options. Pre-checked options stay checked unless the user toggles them off.
func Checkbox(title string, options []CheckboxOption) ([]int, error) {
	final, err := run(newCheckboxModel(title, options))
	if err != nil {
		return nil, fmt.Errorf("checkbox prompt failed; %w", err)
	}

	m := final.(checkboxModel)
	if m.cancelled {
		return nil, ErrCancelled
	}

	return m.checked(), nil
}
