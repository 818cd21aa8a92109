// Package pathutil provides ordered candidate path resolution and path
// expansion helpers shared by the MCP and agent-file checkers.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading "~" to the user's home directory.
// Paths without a leading "~" are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], string(os.PathSeparator)))
}

// ResolveReal resolves symlinks to the real target path.
// If resolution fails the original path is returned so callers can still
// report a meaningful location.
func ResolveReal(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return resolved
	}

	return abs
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(ExpandHome(path))
	return err == nil
}

// FirstExisting returns the first path in candidates that exists.
// Candidates are checked in order; the first hit wins so results are
// deterministic regardless of filesystem state elsewhere in the list.
func FirstExisting(candidates []string) (string, bool) {
	return FirstMatching(candidates, Exists)
}

// FirstMatching returns the first path in candidates satisfying pred.
// Each candidate is home-expanded before the predicate runs.
func FirstMatching(candidates []string, pred func(string) bool) (string, bool) {
	for _, candidate := range candidates {
		expanded := ExpandHome(candidate)
		if pred(expanded) {
			return expanded, true
		}
	}

	return "", false
}
