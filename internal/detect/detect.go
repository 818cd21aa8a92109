// Package detect discovers a project's declared dependencies and matches
// them against the integration catalog to pre-select relevant integrations.
package detect

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pydantic/logfire-setup/internal/catalog"
	"github.com/pydantic/logfire-setup/internal/pathutil"
)

// ProjectDependencies returns the union of package names declared in the
// project's pyproject.toml and requirements.txt. Either file may be absent;
// parse failures degrade to an empty contribution.
func ProjectDependencies(projectDir string) map[string]struct{} {
	packages := make(map[string]struct{})

	pyprojectPath := filepath.Join(projectDir, "pyproject.toml")
	if pathutil.Exists(pyprojectPath) {
		for name := range ParsePyproject(pyprojectPath) {
			packages[name] = struct{}{}
		}
	}

	requirementsPath := filepath.Join(projectDir, "requirements.txt")
	if pathutil.Exists(requirementsPath) {
		for name := range ParseRequirements(requirementsPath) {
			packages[name] = struct{}{}
		}
	}

	slog.Debug("detected project dependencies", "project_dir", projectDir, "count", len(packages))

	return packages
}

// MatchIntegrations returns the integrations whose package patterns match a
// member of the dependency set. Matching is exact string equality after
// lower-casing both sides. The result preserves catalog declaration order,
// so identical input sets always produce identical output.
func MatchIntegrations(dependencies map[string]struct{}) []catalog.Integration {
	var matched []catalog.Integration

	for _, integration := range catalog.All() {
		for _, pattern := range integration.PackagePatterns {
			if _, ok := dependencies[strings.ToLower(pattern)]; ok {
				matched = append(matched, integration)
				break
			}
		}
	}

	return matched
}

// Integrations detects which integrations are relevant for a project
// directory by combining dependency discovery and catalog matching.
func Integrations(projectDir string) []catalog.Integration {
	return MatchIntegrations(ProjectDependencies(projectDir))
}
