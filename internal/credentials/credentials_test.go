package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredentials(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".logfire"), 0o755))
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0o644))
}

func TestProjectURL(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, `{"project_url": "https://logfire-us.pydantic.dev/acme/shop"}`)

	assert.Equal(t, "https://logfire-us.pydantic.dev/acme/shop", ProjectURL(dir))
}

func TestProjectURL_Missing(t *testing.T) {
	assert.Empty(t, ProjectURL(t.TempDir()))
}

func TestProjectURL_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, "{not json")

	assert.Empty(t, ProjectURL(dir))
}

func TestProjectURL_NoField(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, `{"token": "abc"}`)

	assert.Empty(t, ProjectURL(dir))
}
