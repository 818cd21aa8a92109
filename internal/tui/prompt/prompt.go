// Package prompt provides small inline terminal prompts built on Bubble Tea.
// Each prompt runs as its own program so the wizard can interleave prompts
// with plain printed output, matching a sequential question-and-answer flow.
package prompt

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled reports that the user aborted a prompt with Ctrl+C.
var ErrCancelled = errors.New("cancelled by user")

func run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}
