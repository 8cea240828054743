package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

const (
	DEFAULT_ENV       = "dev"
	DEFAULT_LOG_LEVEL = "warn"
)

// Settings holds the process-wide options read from the environment.
// Command-line flags take precedence over these values.
type Settings struct {
	Env      string
	LogLevel string
	NoColor  bool

	// EnvFile is the env file Load tried; EnvFileLoaded reports whether it existed.
	EnvFile       string
	EnvFileLoaded bool
}

// LoadEnv loads config/envs/.env.<env> into the process environment and
// returns the file it tried. Callers decide how to report a missing file,
// since this runs before logging is configured.
func LoadEnv(env string) (string, error) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		return envFile, fmt.Errorf("load %s: %w", envFile, err)
	}
	return envFile, nil
}

// LogEnvFile reports, through the configured logger, whether the env file was used.
func (s Settings) LogEnvFile() {
	if s.EnvFile == "" {
		return
	}
	if !s.EnvFileLoaded {
		slog.Info("[Config] No .env file found, using OS environment",
			slog.String("file", s.EnvFile))
		return
	}
	slog.Debug("[Config] Loaded .env file", slog.String("file", s.EnvFile))
}

// Load resolves APP_ENV, loads the matching env file and reads Settings.
func Load() Settings {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = DEFAULT_ENV
	}
	envFile, err := LoadEnv(env)

	s := FromEnv(env, os.Getenv)
	s.EnvFile = envFile
	s.EnvFileLoaded = err == nil
	return s
}

// FromEnv builds Settings from a lookup function.
func FromEnv(env string, getenv func(string) string) Settings {
	level := strings.ToLower(strings.TrimSpace(getenv("SENTIMIND_LOG_LEVEL")))
	if level == "" {
		level = DEFAULT_LOG_LEVEL
	}

	return Settings{
		Env:      env,
		LogLevel: level,
		NoColor:  isSet(getenv("SENTIMIND_NO_COLOR")) || getenv("NO_COLOR") != "",
	}
}

func isSet(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
