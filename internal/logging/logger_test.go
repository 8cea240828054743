package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}

	for in, want := range testCases {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestInitLogger_FiltersByLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLogger(&buf, "warn", true)

	slog.Info("[Test] hidden")
	slog.Warn("[Test] shown", slog.String("key", "value"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[Test] shown")
	require.Contains(t, out, "key=value")
}
