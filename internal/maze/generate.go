package maze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/telemetry"
)

const (
	// DefaultSize is the default grid dimension.
	DefaultSize = 25
	// DefaultWallProbability is the chance an interior cell becomes a wall.
	DefaultWallProbability = 0.3
	// MinSize is the smallest grid where start and exit can differ.
	MinSize = 2
)

// Configuration errors returned before any grid is built.
var (
	ErrGridTooSmall    = errors.New("grid size must be at least 2")
	ErrWallProbability = errors.New("wall probability must be in [0,1)")
)

// Source is the random source used for generation.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Validate checks generation parameters.
func Validate(size int, wallProbability float64) error {
	if size < MinSize {
		return fmt.Errorf("%w: got %d", ErrGridTooSmall, size)
	}
	// Written so that NaN fails too.
	if !(wallProbability >= 0 && wallProbability < 1) {
		return fmt.Errorf("%w: got %v", ErrWallProbability, wallProbability)
	}
	return nil
}

// Generate builds a random size x size grid and picks an open start cell.
//
// Only interior cells (rows and columns 1..N-2) are drawn as walls with
// probability wallProbability, so the outer ring is always open. The start is
// sampled uniformly over the whole grid until it lands on an open cell.
// Solvability is not checked: the start may be sealed off from the exit.
func Generate(ctx context.Context, size int, wallProbability float64, rng Source) (Grid, Coordinate, error) {
	if err := Validate(size, wallProbability); err != nil {
		return Grid{}, Coordinate{}, err
	}

	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	cells := newOpenGrid(size)
	for row := 1; row < size-1; row++ {
		for col := 1; col < size-1; col++ {
			if rng.Float64() < wallProbability {
				cells[row][col] = CellWall
			}
		}
	}

	g := Grid{size: size, cells: cells}
	g.openCorners()

	// Terminates: the corners are always open.
	var start Coordinate
	samples := 0
	for {
		samples++
		start = Coordinate{Row: rng.Intn(size), Col: rng.Intn(size)}
		if g.IsOpen(start) {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("maze.size", size),
		attribute.Float64("maze.wall_probability", wallProbability),
		attribute.Int("maze.open_cells", g.OpenCount()),
		attribute.Int("maze.start_row", start.Row),
		attribute.Int("maze.start_col", start.Col),
		attribute.Int("maze.start_samples", samples),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g, start, nil
}
