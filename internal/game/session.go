package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/maze"
	"github.com/samdwyer/mazerunner/internal/telemetry"
)

// ErrStartNotOpen is returned when a session is given a start cell that is not open.
var ErrStartNotOpen = errors.New("start position must be an open cell")

// origin is the top-left cell, always open.
var origin = maze.Coordinate{}

// MoveResult reports the outcome of a move attempt.
type MoveResult struct {
	Moved    bool            // Position changed
	GameOver bool            // Player is on the exit
	Position maze.Coordinate // Position after the attempt
}

// Session holds the state of one maze run: the grid, the player position,
// the elapsed time and whether the exit has been reached.
//
// A Session is not safe for concurrent use. Callers serialize Tick,
// AttemptMove and Restart, normally by routing them through a Loop.
type Session struct {
	id      uuid.UUID
	grid    maze.Grid
	start   maze.Coordinate
	player  maze.Coordinate
	elapsed int
	status  Status

	cfg Config
	rng maze.Source
}

// NewSession generates a maze from cfg and places the player on its start cell.
func NewSession(ctx context.Context, cfg Config, rng maze.Source) (*Session, error) {
	s := &Session{cfg: cfg, rng: rng}
	if err := s.Restart(ctx, cfg.Size, cfg.WallProbability); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWithGrid starts a session on a fixed grid. rng is only used by
// later restarts, which regenerate the grid.
func NewSessionWithGrid(grid maze.Grid, start maze.Coordinate, rng maze.Source) (*Session, error) {
	if !grid.IsOpen(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotOpen, start)
	}
	s := &Session{
		cfg: Config{Size: grid.Size(), WallProbability: maze.DefaultWallProbability},
		rng: rng,
	}
	s.reset(grid, start)
	return s, nil
}

// reset installs a fresh grid and returns the session to its initial state.
func (s *Session) reset(grid maze.Grid, start maze.Coordinate) {
	s.id = uuid.New()
	s.grid = grid
	s.start = start
	s.player = start
	s.elapsed = 0
	s.status = StatusPlaying
}

// Restart regenerates the grid and resets position, clock and status.
// Invalid parameters are rejected before anything changes.
func (s *Session) Restart(ctx context.Context, size int, wallProbability float64) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.restart")
	defer span.End()

	grid, start, err := maze.Generate(ctx, size, wallProbability, s.rng)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("restart: %w", err)
	}
	if s.cfg.StartAtOrigin {
		start = origin
	}

	s.cfg.Size = size
	s.cfg.WallProbability = wallProbability
	s.reset(grid, start)

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("player.start_row", start.Row),
		attribute.Int("player.start_col", start.Col),
	)
	return nil
}

// Tick advances the clock by one second while playing.
func (s *Session) Tick() {
	if s.status != StatusPlaying {
		return
	}
	s.elapsed++
}

// AttemptMove moves the player one cell in the given direction if the target
// is inside the grid and open. Blocked moves are silently ignored. Reaching
// the exit ends the game.
func (s *Session) AttemptMove(ctx context.Context, d Direction) MoveResult {
	if s.status == StatusEscaped {
		return s.result(false)
	}

	moved := false
	if dRow, dCol, ok := d.Delta(); ok {
		candidate := s.player.Add(dRow, dCol)
		if s.grid.IsOpen(candidate) {
			s.player = candidate
			moved = true
		}
	}

	if s.player == s.grid.Exit() {
		s.escape(ctx)
	}
	return s.result(moved)
}

// escape marks the game finished.
func (s *Session) escape(ctx context.Context) {
	s.status = StatusEscaped

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.escaped")
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("maze.size", s.grid.Size()),
		attribute.Int("game.elapsed_seconds", s.elapsed),
	)
	span.End()
}

func (s *Session) result(moved bool) MoveResult {
	return MoveResult{
		Moved:    moved,
		GameOver: s.status == StatusEscaped,
		Position: s.player,
	}
}

// ID returns the identifier of the current run. It changes on every restart.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the maze grid.
func (s *Session) Grid() maze.Grid { return s.grid }

// Player returns the current player position.
func (s *Session) Player() maze.Coordinate { return s.player }

// Start returns the start position of the current run.
func (s *Session) Start() maze.Coordinate { return s.start }

// Exit returns the exit position.
func (s *Session) Exit() maze.Coordinate { return s.grid.Exit() }

// Elapsed returns the number of whole seconds played.
func (s *Session) Elapsed() int { return s.elapsed }

// Status returns the current status.
func (s *Session) Status() Status { return s.status }

// GameOver returns true once the exit has been reached.
func (s *Session) GameOver() bool { return s.status == StatusEscaped }

// Config returns the parameters used by the last (re)start.
func (s *Session) Config() Config { return s.cfg }

// Snapshot captures the observable state for rendering.
type Snapshot struct {
	ID      uuid.UUID
	Grid    maze.Grid
	Start   maze.Coordinate
	Player  maze.Coordinate
	Exit    maze.Coordinate
	Elapsed int
	Status  Status
}

// GameOver returns true if the snapshot was taken after the exit was reached.
func (s Snapshot) GameOver() bool {
	return s.Status == StatusEscaped
}

// Snapshot returns the current observable state.
// The grid is immutable, so the snapshot can be handed to another goroutine.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:      s.id,
		Grid:    s.grid,
		Start:   s.start,
		Player:  s.player,
		Exit:    s.grid.Exit(),
		Elapsed: s.elapsed,
		Status:  s.status,
	}
}
