package detect

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// versionCutpoints are the tokens that terminate a package name inside a
// dependency specifier. The name is everything before the earliest one.
var versionCutpoints = []string{"[", ">=", "==", "<", ">"}

// normalizePackageName strips extras markers, version specifiers, and
// surrounding whitespace from a dependency specifier and lower-cases the
// remaining package name.
func normalizePackageName(spec string) string {
	name := spec
	for _, cut := range versionCutpoints {
		if idx := strings.Index(name, cut); idx != -1 {
			name = name[:idx]
		}
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// ParsePyproject extracts declared package names from a pyproject.toml file.
// It reads [project] dependencies, [project.optional-dependencies] groups,
// [dependency-groups] (PEP 735), and [tool.poetry.dependencies] keys
// (excluding the python runtime pin). Missing or malformed files yield an
// empty set.
func ParsePyproject(path string) map[string]struct{} {
	packages := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if err != nil {
		return packages
	}

	var manifest map[string]any
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return packages
	}

	if project, ok := manifest["project"].(map[string]any); ok {
		addSpecList(packages, project["dependencies"])

		if optional, ok := project["optional-dependencies"].(map[string]any); ok {
			for _, group := range optional {
				addSpecList(packages, group)
			}
		}
	}

	if groups, ok := manifest["dependency-groups"].(map[string]any); ok {
		for _, group := range groups {
			addSpecList(packages, group)
		}
	}

	if tool, ok := manifest["tool"].(map[string]any); ok {
		if poetry, ok := tool["poetry"].(map[string]any); ok {
			if deps, ok := poetry["dependencies"].(map[string]any); ok {
				for name := range deps {
					if name == "python" {
						continue
					}
					packages[strings.ToLower(name)] = struct{}{}
				}
			}
		}
	}

	return packages
}

// addSpecList normalizes and records every string entry of a TOML array.
func addSpecList(packages map[string]struct{}, value any) {
	list, ok := value.([]any)
	if !ok {
		return
	}

	for _, entry := range list {
		spec, ok := entry.(string)
		if !ok {
			continue
		}
		if name := normalizePackageName(spec); name != "" {
			packages[name] = struct{}{}
		}
	}
}

// ParseRequirements extracts package names from a requirements.txt file.
// Blank lines, comment lines (leading '#'), and option lines (leading '-',
// e.g. "-e" or "-r") are skipped. A missing file yields an empty set.
func ParseRequirements(path string) map[string]struct{} {
	packages := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if err != nil {
		return packages
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := normalizePackageName(line); name != "" {
			packages[name] = struct{}{}
		}
	}

	return packages
}
