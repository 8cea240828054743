package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// InitLogger installs a tint handler as the default slog logger.
// Results go to stdout, so logs are expected to be written to stderr.
func InitLogger(w io.Writer, level string, noColor bool) {
	lvl := ParseLevel(level)
	handler := tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  lvl == slog.LevelDebug,
		NoColor:    noColor,
	})

	slog.SetDefault(slog.New(handler))
}
