package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/mazerunner/internal/maze"
)

// Config holds game configuration options.
type Config struct {
	// Size is the grid dimension N.
	Size int
	// WallProbability is the chance each interior cell becomes a wall.
	WallProbability float64
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// StartAtOrigin places the player at (0,0) instead of a random open cell.
	StartAtOrigin bool
}

// DefaultConfig returns the standard 25x25 maze with 30% walls.
func DefaultConfig() Config {
	return Config{
		Size:            maze.DefaultSize,
		WallProbability: maze.DefaultWallProbability,
	}
}

// Validate checks the maze parameters.
func (c Config) Validate() error {
	return maze.Validate(c.Size, c.WallProbability)
}

// NewRand returns a random source seeded from the config.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
