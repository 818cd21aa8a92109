package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", DefaultLevel, false},
		{"verbose", DefaultLevel, false},
	}

	for _, tc := range cases {
		level, ok := ParseLevel(tc.input)
		if level != tc.want || ok != tc.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.input, level, ok, tc.want, tc.ok)
		}
	}
}

func TestManager_BootstrapSuppressesInfo(t *testing.T) {
	m := NewManager()
	defer m.Close()

	if m.Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("bootstrap mode should not log at info level")
	}
	if !m.Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("bootstrap mode should log at warn level")
	}
}

func TestManager_UpgradeWritesJSONFile(t *testing.T) {
	m := NewManager()
	defer m.Close()

	logFile := filepath.Join(t.TempDir(), "setup.log")
	m.Upgrade(logFile, slog.LevelDebug)

	m.Logger().Debug("wizard step", "step", "detect")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}

	if !strings.Contains(string(data), `"msg":"wizard step"`) {
		t.Errorf("expected JSON record in log file, got: %s", data)
	}
}

func TestManager_UpgradeWithoutFileOnlyChangesLevel(t *testing.T) {
	m := NewManager()
	defer m.Close()

	m.Upgrade("", slog.LevelDebug)

	if !m.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level after upgrade")
	}
}

func TestManager_LoggerStableAcrossUpgrade(t *testing.T) {
	m := NewManager()
	defer m.Close()

	logger := m.Logger()
	m.Upgrade(filepath.Join(t.TempDir(), "setup.log"), slog.LevelInfo)

	if m.Logger() != logger {
		t.Error("logger identity must be stable across Upgrade")
	}
}
