package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	VersionCmd.SetOut(&out)
	VersionCmd.SetArgs(nil)

	if err := VersionCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, label := range []string{"Version:", "Git Commit:", "Build Date:"} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("output missing %q:\n%s", label, out.String())
		}
	}
}
