// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazerunner/internal/game"
	"github.com/samdwyer/mazerunner/internal/telemetry"
	"github.com/samdwyer/mazerunner/internal/ui"
)

// Environment variable names.
const (
	EnvSize            = "MAZE_SIZE"
	EnvWallProbability = "MAZE_WALL_PROBABILITY"
	EnvSeed            = "MAZE_SEED"
	EnvStartAtOrigin   = "MAZE_START_AT_ORIGIN"
	EnvLogFile         = "MAZE_LOG_FILE"
	EnvLogLevel        = "MAZE_LOG_LEVEL"
	EnvColorWall       = "MAZE_COLOR_WALL"
	EnvColorPath       = "MAZE_COLOR_PATH"
	EnvColorPlayer     = "MAZE_COLOR_PLAYER"
	EnvColorExit       = "MAZE_COLOR_EXIT"
	EnvColorTimer      = "MAZE_COLOR_TIMER"
	EnvHoneycombKey    = "HONEYCOMB_MAZERUNNER_API_KEY"
	EnvHoneycombData   = "HONEYCOMB_MAZERUNNER_DATASET"
	EnvOTLPEndpoint    = "MAZE_OTLP_ENDPOINT"
)

const defaultLogFile = "mazerunner.log"

// Config holds everything the host needs to start a game.
type Config struct {
	Game      game.Config
	Theme     ui.Theme
	LogFile   string
	LogLevel  logrus.Level
	Telemetry telemetry.Options
}

// Load reads a .env file if present and then the process environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Game:     game.DefaultConfig(),
		Theme:    ui.DefaultTheme(),
		LogFile:  defaultLogFile,
		LogLevel: logrus.InfoLevel,
	}

	var err error
	if cfg.Game.Size, err = intEnv(lookup, EnvSize, cfg.Game.Size); err != nil {
		return Config{}, err
	}
	if cfg.Game.WallProbability, err = floatEnv(lookup, EnvWallProbability, cfg.Game.WallProbability); err != nil {
		return Config{}, err
	}
	if cfg.Game.Seed, err = int64Env(lookup, EnvSeed, cfg.Game.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Game.StartAtOrigin, err = boolEnv(lookup, EnvStartAtOrigin, cfg.Game.StartAtOrigin); err != nil {
		return Config{}, err
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid maze settings: %w", err)
	}

	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	colors := []struct {
		key  string
		dest *string
	}{
		{EnvColorWall, &cfg.Theme.Wall},
		{EnvColorPath, &cfg.Theme.Path},
		{EnvColorPlayer, &cfg.Theme.Player},
		{EnvColorExit, &cfg.Theme.Exit},
		{EnvColorTimer, &cfg.Theme.Timer},
	}
	for _, c := range colors {
		if v, ok := lookup(c.key); ok {
			*c.dest = v
		}
	}
	if _, err := cfg.Theme.Styles(); err != nil {
		return Config{}, fmt.Errorf("invalid theme: %w", err)
	}

	cfg.Telemetry.APIKey, _ = lookup(EnvHoneycombKey)
	cfg.Telemetry.Dataset, _ = lookup(EnvHoneycombData)
	cfg.Telemetry.Endpoint, _ = lookup(EnvOTLPEndpoint)

	return cfg, nil
}

func intEnv(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func int64Env(lookup func(string) (string, bool), key string, def int64) (int64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func floatEnv(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func boolEnv(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
