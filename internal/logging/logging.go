// Package logging manages the process-wide slog logger. The tool starts in
// bootstrap mode (warnings and errors to stderr) so interactive output
// stays clean, then upgrades to an additional JSON file sink once settings
// are known.
package logging

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Manager owns the logger lifecycle for one CLI invocation.
type Manager struct {
	handler *swappableHandler
	logger  *slog.Logger
	level   *slog.LevelVar
	sink    *lumberjack.Logger
	mu      sync.Mutex
}

// NewManager creates a manager in bootstrap mode: text to stderr only, at
// warn level so prompts are not interleaved with log lines.
func NewManager() *Manager {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	bootstrap := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	handler := newSwappableHandler(bootstrap)

	return &Manager{
		handler: handler,
		logger:  slog.New(handler),
		level:   level,
	}
}

// Logger returns the managed logger. The returned value is stable across
// Upgrade calls.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Upgrade adds a rotating JSON file sink alongside the stderr text handler
// and applies the configured level. Safe to call once settings are loaded;
// an error leaves bootstrap mode in place.
func (m *Manager) Upgrade(logFilePath string, level slog.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.level.Set(level)

	if logFilePath == "" {
		return
	}

	sink := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if m.sink != nil {
		_ = m.sink.Close()
	}
	m.sink = sink

	opts := &slog.HandlerOptions{Level: m.level}
	m.handler.swap(slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, opts),
		slog.NewJSONHandler(sink, opts),
	))
}

// Close releases the file sink, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink != nil {
		err := m.sink.Close()
		m.sink = nil
		return err
	}
	return nil
}

// swappableHandler is a slog.Handler whose target can be replaced at
// runtime without invalidating existing logger references.
type swappableHandler struct {
	target atomic.Pointer[slog.Handler]
}

func newSwappableHandler(initial slog.Handler) *swappableHandler {
	h := &swappableHandler{}
	h.target.Store(&initial)
	return h
}

func (h *swappableHandler) swap(next slog.Handler) {
	h.target.Store(&next)
}

func (h *swappableHandler) current() slog.Handler {
	return *h.target.Load()
}

func (h *swappableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.current().Enabled(ctx, level)
}

func (h *swappableHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.current().Handle(ctx, record)
}

func (h *swappableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newSwappableHandler(h.current().WithAttrs(attrs))
}

func (h *swappableHandler) WithGroup(name string) slog.Handler {
	return newSwappableHandler(h.current().WithGroup(name))
}
