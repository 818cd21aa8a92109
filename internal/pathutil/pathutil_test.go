package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := ExpandHome("~/docs/file.json")
	want := filepath.Join(home, "docs", "file.json")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := ExpandHome("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}

	if got := ExpandHome(""); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}

func TestFirstExisting_OrderWins(t *testing.T) {
	dir := t.TempDir()

	second := filepath.Join(dir, "second.md")
	third := filepath.Join(dir, "third.md")
	for _, path := range []string{second, third} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	candidates := []string{
		filepath.Join(dir, "first.md"), // does not exist
		second,
		third,
	}

	got, ok := FirstExisting(candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != second {
		t.Errorf("expected %q, got %q", second, got)
	}
}

func TestFirstExisting_NoMatch(t *testing.T) {
	dir := t.TempDir()

	_, ok := FirstExisting([]string{filepath.Join(dir, "a"), filepath.Join(dir, "b")})
	if ok {
		t.Error("expected no match")
	}
}

func TestFirstMatching_Predicate(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small")
	big := filepath.Join(dir, "big")
	if err := os.WriteFile(small, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(big, []byte("xxxxxxxxxx"), 0o644); err != nil {
		t.Fatal(err)
	}

	atLeastFive := func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.Size() >= 5
	}

	got, ok := FirstMatching([]string{small, big}, atLeastFive)
	if !ok || got != big {
		t.Errorf("expected %q, got %q (ok=%v)", big, got, ok)
	}
}

func TestResolveReal_Symlink(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "target.md")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(dir, "link.md")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolvedTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	if got := ResolveReal(link); got != resolvedTarget {
		t.Errorf("expected %q, got %q", resolvedTarget, got)
	}
}

func TestResolveReal_MissingPathReturnsInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.md")
	if got := ResolveReal(missing); got != missing {
		t.Errorf("expected input back, got %q", got)
	}
}
