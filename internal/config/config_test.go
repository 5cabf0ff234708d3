package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazerunner/internal/maze"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupMap(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.Game.Size != maze.DefaultSize {
		t.Errorf("Game.Size = %d, want %d", cfg.Game.Size, maze.DefaultSize)
	}
	if cfg.Game.WallProbability != maze.DefaultWallProbability {
		t.Errorf("Game.WallProbability = %v, want %v", cfg.Game.WallProbability, maze.DefaultWallProbability)
	}
	if cfg.Game.Seed != 0 || cfg.Game.StartAtOrigin {
		t.Errorf("Game = %+v, want zero seed and random start", cfg.Game)
	}
	if cfg.LogFile != defaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, defaultLogFile)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Telemetry.APIKey != "" {
		t.Errorf("Telemetry.APIKey = %q, want empty", cfg.Telemetry.APIKey)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupMap(map[string]string{
		EnvSize:            "11",
		EnvWallProbability: "0.5",
		EnvSeed:            "42",
		EnvStartAtOrigin:   "true",
		EnvLogFile:         "",
		EnvLogLevel:        "debug",
		EnvColorWall:       "#101010",
		EnvHoneycombKey:    "secret",
		EnvHoneycombData:   "runs",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.Game.Size != 11 || cfg.Game.WallProbability != 0.5 || cfg.Game.Seed != 42 || !cfg.Game.StartAtOrigin {
		t.Errorf("Game = %+v", cfg.Game)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Theme.Wall != "#101010" {
		t.Errorf("Theme.Wall = %q, want %q", cfg.Theme.Wall, "#101010")
	}
	if cfg.Telemetry.APIKey != "secret" || cfg.Telemetry.Dataset != "runs" {
		t.Errorf("Telemetry = %+v", cfg.Telemetry)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"size too small", map[string]string{EnvSize: "1"}, maze.ErrGridTooSmall},
		{"probability too high", map[string]string{EnvWallProbability: "1"}, maze.ErrWallProbability},
		{"size not a number", map[string]string{EnvSize: "big"}, nil},
		{"seed not a number", map[string]string{EnvSeed: "x"}, nil},
		{"bad bool", map[string]string{EnvStartAtOrigin: "maybe"}, nil},
		{"bad level", map[string]string{EnvLogLevel: "loud"}, nil},
		{"bad color", map[string]string{EnvColorExit: "#12"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupMap(tt.env))
			if err == nil {
				t.Fatal("FromEnv() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("FromEnv() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MAZE_SIZE=9\nMAZE_SEED=7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	// godotenv does not override variables that are already set.
	t.Setenv(EnvSize, "")
	os.Unsetenv(EnvSize)
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.Size != 9 || cfg.Game.Seed != 7 {
		t.Errorf("Game = %+v, want size 9 seed 7", cfg.Game)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Load() error = %v, want nil for a missing file", err)
	}
}
