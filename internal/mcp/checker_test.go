package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the home-relative candidate at an empty directory so
// a developer's real Claude Desktop config cannot leak into test results.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, dir string, parts []string, content string) string {
	t.Helper()
	path := filepath.Join(append([]string{dir}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_CursorWithEnvToken(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, []string{".cursor", "mcp.json"}, `{
		"mcpServers": {
			"logfire": {
				"command": "uvx",
				"args": ["logfire-mcp@latest"],
				"env": {"LOGFIRE_READ_TOKEN": "tok"}
			}
		}
	}`)

	result := Check(dir)

	assert.True(t, result.Configured)
	assert.True(t, result.HasReadToken)
	assert.Equal(t, path, result.ConfigPath)
}

func TestCheck_ArgsToken(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeConfig(t, dir, []string{".mcp.json"}, `{
		"mcpServers": {
			"logfire": {
				"command": "uvx",
				"args": ["logfire-mcp@latest", "--read-token=tok"]
			}
		}
	}`)

	result := Check(dir)

	assert.True(t, result.Configured)
	assert.True(t, result.HasReadToken)
}

func TestCheck_ConfiguredWithoutToken(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeConfig(t, dir, []string{".vscode", "mcp.json"}, `{
		"servers": {
			"logfire": {"command": "uvx", "args": ["logfire-mcp@latest"]}
		}
	}`)

	result := Check(dir)

	assert.True(t, result.Configured)
	assert.False(t, result.HasReadToken)
}

func TestCheck_ZedContextServers(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeConfig(t, dir, []string{".zed", "settings.json"}, `{
		"context_servers": {
			"logfire": {"command": "uvx", "env": {"LOGFIRE_READ_TOKEN": "tok"}}
		}
	}`)

	result := Check(dir)

	assert.True(t, result.Configured)
	assert.True(t, result.HasReadToken)
}

func TestCheck_MalformedFileScanContinues(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeConfig(t, dir, []string{".mcp.json"}, "{not json")
	path := writeConfig(t, dir, []string{".cursor", "mcp.json"}, `{
		"mcpServers": {"logfire": {"command": "uvx"}}
	}`)

	result := Check(dir)

	assert.True(t, result.Configured)
	assert.Equal(t, path, result.ConfigPath)
}

func TestCheck_FirstMatchWins(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	first := writeConfig(t, dir, []string{".mcp.json"}, `{
		"mcpServers": {"logfire": {"command": "uvx"}}
	}`)
	writeConfig(t, dir, []string{".cursor", "mcp.json"}, `{
		"mcpServers": {"logfire": {"command": "uvx", "env": {"LOGFIRE_READ_TOKEN": "tok"}}}
	}`)

	result := Check(dir)

	// The .mcp.json entry wins even though the cursor one has a token;
	// results are never aggregated across files.
	assert.Equal(t, first, result.ConfigPath)
	assert.False(t, result.HasReadToken)
}

func TestCheck_OtherServersOnly(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeConfig(t, dir, []string{".mcp.json"}, `{
		"mcpServers": {"github": {"command": "npx"}}
	}`)

	assert.False(t, Check(dir).Configured)
}

func TestCheck_NothingConfigured(t *testing.T) {
	isolateHome(t)

	result := Check(t.TempDir())

	assert.False(t, result.Configured)
	assert.Empty(t, result.ConfigPath)
	assert.False(t, result.HasReadToken)
}

func TestReadTokenURL(t *testing.T) {
	assert.Equal(t,
		"https://logfire-us.pydantic.dev/acme/shop/settings/read-tokens/new",
		ReadTokenURL("https://logfire-us.pydantic.dev/acme/shop"))

	assert.Equal(t,
		"https://logfire.pydantic.dev/-/redirect/latest-project/settings/read-tokens",
		ReadTokenURL(""))
}

func TestConfigExample_FallsBackToCursor(t *testing.T) {
	assert.Equal(t, ConfigExample("cursor"), ConfigExample("unknown-ide"))
	assert.Contains(t, ConfigExample("zed"), "context_servers")
}
