package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookup(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestFromEnv_Defaults(t *testing.T) {
	s := FromEnv("dev", lookup(nil))

	require.Equal(t, "dev", s.Env)
	require.Equal(t, DEFAULT_LOG_LEVEL, s.LogLevel)
	require.False(t, s.NoColor)
}

func TestFromEnv_Overrides(t *testing.T) {
	testCases := []struct {
		name      string
		vars      map[string]string
		wantLevel string
		wantColor bool
	}{
		{"log level is normalised", map[string]string{"SENTIMIND_LOG_LEVEL": " DEBUG "}, "debug", false},
		{"sentimind no color", map[string]string{"SENTIMIND_NO_COLOR": "1"}, DEFAULT_LOG_LEVEL, true},
		{"sentimind no color false", map[string]string{"SENTIMIND_NO_COLOR": "false"}, DEFAULT_LOG_LEVEL, false},
		{"NO_COLOR convention", map[string]string{"NO_COLOR": "anything"}, DEFAULT_LOG_LEVEL, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := FromEnv("test", lookup(tc.vars))
			require.Equal(t, tc.wantLevel, s.LogLevel)
			require.Equal(t, tc.wantColor, s.NoColor)
		})
	}
}

func TestLoadEnv_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "envs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", "envs", ".env.unittest"),
		[]byte("SENTIMIND_TEST_MARKER=loaded\n"), 0o600))

	chdir(t, dir)
	t.Setenv("SENTIMIND_TEST_MARKER", "")
	require.NoError(t, os.Unsetenv("SENTIMIND_TEST_MARKER"))

	file, err := LoadEnv("unittest")
	require.NoError(t, err)
	require.Equal(t, "config/envs/.env.unittest", file)

	require.Equal(t, "loaded", os.Getenv("SENTIMIND_TEST_MARKER"))
}

func TestLoadEnv_MissingFileIsTolerated(t *testing.T) {
	chdir(t, t.TempDir())
	file, err := LoadEnv("does-not-exist")
	require.Error(t, err)
	require.Equal(t, "config/envs/.env.does-not-exist", file)
}

func TestLoad_RecordsMissingEnvFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "nowhere")

	s := Load()

	require.Equal(t, "nowhere", s.Env)
	require.Equal(t, "config/envs/.env.nowhere", s.EnvFile)
	require.False(t, s.EnvFileLoaded)
}

func TestSettings_LogEnvFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	Settings{EnvFile: "config/envs/.env.dev"}.LogEnvFile()
	require.Contains(t, buf.String(), "No .env file found")
	require.Contains(t, buf.String(), "config/envs/.env.dev")

	buf.Reset()
	Settings{EnvFile: "config/envs/.env.dev", EnvFileLoaded: true}.LogEnvFile()
	require.Empty(t, buf.String())
}
