// Package agentfile locates and updates the project's AI-agent
// documentation file (AGENTS.md or CLAUDE.md), appending generated Logfire
// usage instructions exactly once.
package agentfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydantic/logfire-setup/internal/pathutil"
)

// DefaultName is the file created when no candidate exists.
const DefaultName = "AGENTS.md"

// markers identify files that already carry Logfire instructions. Any one
// of them makes the writer a no-op.
var markers = []string{
	"# Logfire Best Practices",
	"logfire.configure()",
	"https://logfire.pydantic.dev",
}

// Candidates returns the ordered list of agent file locations checked for
// a project directory. The first existing file wins.
func Candidates(projectDir string) []string {
	return []string{
		filepath.Join(projectDir, "AGENTS.md"),
		filepath.Join(projectDir, "CLAUDE.md"),
		filepath.Join(projectDir, ".claude", "AGENTS.md"),
		filepath.Join(projectDir, ".claude", "CLAUDE.md"),
	}
}

// Find returns the real path (symlinks resolved) of the first existing
// agent file candidate.
func Find(projectDir string) (string, bool) {
	path, ok := pathutil.FirstExisting(Candidates(projectDir))
	if !ok {
		return "", false
	}
	return pathutil.ResolveReal(path), true
}

// HasInstructions reports whether the file at path already contains any of
// the Logfire instruction markers. Unreadable files report false.
func HasInstructions(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	content := string(data)
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			return true
		}
	}

	return false
}

// Append adds instructions to the end of an existing file, separated from
// prior content by a horizontal rule with exactly one blank line on each
// side. The resulting file always ends with exactly one trailing newline.
func Append(path, instructions string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s; %w", path, err)
	}

	existing := strings.TrimRight(string(data), "\n")
	block := strings.TrimRight(instructions, "\n") + "\n"

	var content string
	if existing == "" {
		content = block
	} else {
		content = existing + "\n\n---\n\n" + block
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s; %w", path, err)
	}

	return nil
}

// Create writes a new agent file at the default location containing only
// the instructions plus one trailing newline.
func Create(projectDir, instructions string) (string, error) {
	path := filepath.Join(projectDir, DefaultName)
	content := strings.TrimRight(instructions, "\n") + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to create %s; %w", path, err)
	}

	return path, nil
}

// Result describes what Write did.
type Result struct {
	// Path is the file that was written, created, or found instrumented.
	Path string

	// Created reports that a new file was created.
	Created bool

	// Skipped reports that the file already contained instructions and
	// was left unchanged.
	Skipped bool
}

// Write adds instructions to the project's agent file: appending to the
// first existing candidate, skipping when markers are already present, or
// creating a new AGENTS.md. Filesystem errors are returned, never panicked.
func Write(projectDir, instructions string) (Result, error) {
	path, found := Find(projectDir)
	if !found {
		created, err := Create(projectDir, instructions)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: created, Created: true}, nil
	}

	if HasInstructions(path) {
		return Result{Path: path, Skipped: true}, nil
	}

	if err := Append(path, instructions); err != nil {
		return Result{Path: path}, err
	}

	return Result{Path: path}, nil
}
