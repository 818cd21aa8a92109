// Package version provides version and build information for the binary.
package version

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var versionFile string

// Linker-injected variables. Set via:
//
//	go build -ldflags "-X github.com/pydantic/logfire-setup/internal/version.gitCommit=VALUE"
var (
	gitCommit string
	buildDate string
)

// Info holds version and build metadata.
type Info struct {
	// Version is the semantic version from the embedded VERSION file.
	Version string

	// GitCommit is the short commit hash, with a "-dirty" suffix for
	// modified trees.
	GitCommit string

	// BuildDate is an ISO 8601 timestamp, when injected at build time.
	BuildDate string
}

// String formats Info for display.
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s\nBuild Date: %s",
		i.Version, i.GitCommit, i.BuildDate)
}

// Get returns the version information for this binary.
func Get() Info {
	return Info{
		Version:   strings.TrimSpace(versionFile),
		GitCommit: resolveGitCommit(),
		BuildDate: resolveBuildDate(),
	}
}

// resolveGitCommit prefers the linker-injected value, then VCS build info
// for `go install` builds, then "unknown".
func resolveGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}

	revision, dirty := vcsInfo()
	if revision == "" {
		return "unknown"
	}
	if dirty {
		return revision + "-dirty"
	}
	return revision
}

func resolveBuildDate() string {
	if buildDate != "" {
		return buildDate
	}
	return "unknown"
}

// vcsInfo extracts the commit revision (shortened to 7 characters) and
// dirty flag from debug.ReadBuildInfo.
func vcsInfo() (revision string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	return revision, dirty
}
