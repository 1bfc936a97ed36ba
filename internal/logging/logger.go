package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/depeter/marquee/internal/constants"
)

// ParseLevel converts a config level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", level)
	}
}

// New builds a text logger. With an empty dir it writes to stderr; otherwise
// it appends to a dated file in dir. The returned closer releases the file.
func New(level slog.Level, dir string) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
		path := LogPath(dir, time.Now())
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	return NewWithWriter(w, level), closer, nil
}

// NewWithWriter builds a text logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogPath returns the log file for day t in dir.
func LogPath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.log", constants.AppName, t.Format("2006-01-02")))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
