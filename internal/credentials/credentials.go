// Package credentials reads the project selection file written by
// `logfire projects use` into the project's .logfire directory. The file is
// read-only from this tool's perspective.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the credentials file name inside the .logfire directory.
const FileName = "logfire_credentials.json"

// Credentials mirrors the fields of logfire_credentials.json that this
// tool consumes.
type Credentials struct {
	ProjectURL string `json:"project_url"`
}

// Path returns the credentials file location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, ".logfire", FileName)
}

// ProjectURL returns the persisted project URL for a project directory, or
// "" when the file is absent, malformed, or has no project_url field.
func ProjectURL(projectDir string) string {
	data, err := os.ReadFile(Path(projectDir))
	if err != nil {
		return ""
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ""
	}

	return creds.ProjectURL
}
