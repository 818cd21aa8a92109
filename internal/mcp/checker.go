// Package mcp checks well-known editor and agent-tool configuration files
// for an existing Logfire MCP server entry and a read-capable token.
package mcp

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydantic/logfire-setup/internal/pathutil"
)

const (
	// ServerName is the MCP server entry this tool looks for.
	ServerName = "logfire"

	// ReadTokenEnvVar is the environment variable holding a read token.
	ReadTokenEnvVar = "LOGFIRE_READ_TOKEN"

	// readTokenFlag is the command-line flag form of a read token.
	readTokenFlag = "--read-token"
)

// containerKeys are the top-level keys that may hold the server map,
// depending on the tool dialect: mcpServers (Cursor, Cline, Claude Desktop,
// Claude Code), servers (VS Code), context_servers (Zed).
var containerKeys = []string{"mcpServers", "servers", "context_servers"}

// CheckResult is the outcome of an MCP configuration scan.
type CheckResult struct {
	// Configured reports whether a logfire server entry was found.
	Configured bool

	// ConfigPath is the config file containing the entry, when found.
	ConfigPath string

	// HasReadToken reports whether the entry supplies a read token via
	// args or env.
	HasReadToken bool
}

// CandidatePaths returns the ordered list of config file locations scanned
// for a project directory. Order matters: the first match wins.
func CandidatePaths(projectDir string) []string {
	return []string{
		filepath.Join(projectDir, ".mcp.json"),
		filepath.Join(projectDir, ".cursor", "mcp.json"),
		filepath.Join(projectDir, "cline_mcp_settings.json"),
		filepath.Join(projectDir, ".claude", "mcp.json"),
		filepath.Join(projectDir, ".vscode", "mcp.json"),
		filepath.Join(projectDir, ".zed", "settings.json"),
		"~/Library/Application Support/Claude/claude_desktop_config.json",
	}
}

// Check scans the candidate config files in order and returns the result
// for the first file containing a logfire server entry. Files that are
// missing, malformed, or lack the entry are skipped; results are never
// aggregated across files.
func Check(projectDir string) CheckResult {
	for _, candidate := range CandidatePaths(projectDir) {
		path := pathutil.ExpandHome(candidate)

		result, ok := checkFile(path)
		if ok {
			slog.Debug("found logfire MCP entry", "path", path, "has_read_token", result.HasReadToken)
			return result
		}
	}

	return CheckResult{}
}

// checkFile inspects a single config file for a logfire server entry.
func checkFile(path string) (CheckResult, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CheckResult{}, false
	}

	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return CheckResult{}, false
	}

	for _, key := range containerKeys {
		servers, ok := config[key].(map[string]any)
		if !ok {
			continue
		}

		entry, ok := servers[ServerName].(map[string]any)
		if !ok {
			continue
		}

		return CheckResult{
			Configured:   true,
			ConfigPath:   path,
			HasReadToken: hasReadToken(entry),
		}, true
	}

	return CheckResult{}, false
}

// hasReadToken reports whether a server entry supplies a read token either
// as a command-line argument or an explicit env mapping.
func hasReadToken(entry map[string]any) bool {
	if args, ok := entry["args"].([]any); ok {
		for _, arg := range args {
			s, ok := arg.(string)
			if !ok {
				continue
			}
			if strings.Contains(s, readTokenFlag) || strings.Contains(s, ReadTokenEnvVar) {
				return true
			}
		}
	}

	if env, ok := entry["env"].(map[string]any); ok {
		if _, present := env[ReadTokenEnvVar]; present {
			return true
		}
	}

	return false
}

// ReadTokenURL returns the page where a read token can be created for the
// given project URL. With no project URL it falls back to the
// latest-project redirect.
func ReadTokenURL(projectURL string) string {
	if projectURL == "" {
		return "https://logfire.pydantic.dev/-/redirect/latest-project/settings/read-tokens"
	}
	return projectURL + "/settings/read-tokens/new"
}
