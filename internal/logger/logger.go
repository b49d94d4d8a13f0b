// Package logger provides a thin wrapper around zerolog.Logger used by the
// stores, services and CLI of resume-builder.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Err, ...)
// is available on *Logger. Components receive a *Logger at construction and
// derive child loggers with With() for component-scoped fields.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to w. Every entry carries a "role" field
// and a timestamp.
func New(role string, w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}, nil
}

// NewFile builds a logger that appends to the file at path, creating parent
// directories as needed. The returned closer releases the file.
func NewFile(role, path, level string) (*Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l, err := New(role, f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return l, f, nil
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger tagged with the given component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// ParseLevel maps a textual level to a zerolog level. An empty string means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
