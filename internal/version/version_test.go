package version

import (
	"strings"
	"testing"
)

func TestGet_VersionFromEmbeddedFile(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Fatal("expected embedded version, got empty string")
	}
	if info.Version != strings.TrimSpace(info.Version) {
		t.Errorf("version %q has surrounding whitespace", info.Version)
	}
	if parts := strings.SplitN(info.Version, ".", 3); len(parts) != 3 {
		t.Errorf("version %q is not MAJOR.MINOR.PATCH", info.Version)
	}
}

func TestGet_AlwaysPopulated(t *testing.T) {
	info := Get()

	if info.GitCommit == "" {
		t.Error("GitCommit should be a value or \"unknown\", never empty")
	}
	if info.BuildDate == "" {
		t.Error("BuildDate should be a value or \"unknown\", never empty")
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		GitCommit: "abc1234-dirty",
		BuildDate: "2026-08-25T10:00:00Z",
	}

	want := "Version:    1.2.3\nGit Commit: abc1234-dirty\nBuild Date: 2026-08-25T10:00:00Z"
	if got := info.String(); got != want {
		t.Errorf("Info.String() = %q, want %q", got, want)
	}
}
