package detect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydantic/logfire-setup/internal/config"
)

func setupProject(t *testing.T, pyproject string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyproject), 0o644))

	previous := config.Get()
	config.Set(&config.Settings{ProjectDir: dir})
	t.Cleanup(func() { config.Set(previous) })
}

func TestRunDetect_TextOutput(t *testing.T) {
	setupProject(t, `[project]
dependencies = ["fastapi>=0.100", "httpx"]
`)

	var out bytes.Buffer
	DetectCmd.SetOut(&out)
	DetectCmd.SetArgs(nil)
	detectJSON = false

	require.NoError(t, DetectCmd.Execute())

	assert.Contains(t, out.String(), "Detected 2 matching integration(s):")
	assert.Contains(t, out.String(), "FastAPI")
	assert.Contains(t, out.String(), "HTTPX")
}

func TestRunDetect_NoMatches(t *testing.T) {
	setupProject(t, `[project]
dependencies = ["numpy"]
`)

	var out bytes.Buffer
	DetectCmd.SetOut(&out)
	DetectCmd.SetArgs(nil)
	detectJSON = false

	require.NoError(t, DetectCmd.Execute())

	assert.Contains(t, out.String(), "No matching integrations detected.")
}

func TestRunDetect_JSONOutput(t *testing.T) {
	setupProject(t, `[project]
dependencies = ["django"]
`)

	var out bytes.Buffer
	DetectCmd.SetOut(&out)
	DetectCmd.SetArgs([]string{"--json"})

	require.NoError(t, DetectCmd.Execute())

	var matches []struct {
		Extra       string `json:"extra"`
		DisplayName string `json:"display_name"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "django", matches[0].Extra)
	assert.Equal(t, "Django", matches[0].DisplayName)
}
