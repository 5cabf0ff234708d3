package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/mazerunner/internal/maze"
)

const waitTimeout = 2 * time.Second

// runLoop starts the loop and returns a channel of published snapshots and a stop function.
func runLoop(t *testing.T, s *Session, opts ...LoopOption) (*Loop, <-chan Snapshot, func()) {
	t.Helper()
	snapshots := make(chan Snapshot, 256)
	opts = append(opts, WithObserver(func(snap Snapshot) {
		select {
		case snapshots <- snap:
		default:
		}
	}))
	l := NewLoop(s, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	stop := func() {
		cancel()
		select {
		case err := <-errc:
			if err != nil {
				t.Errorf("Run() error = %v", err)
			}
		case <-time.After(waitTimeout):
			t.Fatal("Run() did not return after cancel")
		}
	}
	return l, snapshots, stop
}

// waitFor reads snapshots until one matches.
func waitFor(t *testing.T, snapshots <-chan Snapshot, match func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case snap := <-snapshots:
			if match(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
			return Snapshot{}
		}
	}
}

func TestLoopAppliesMoves(t *testing.T) {
	s := newTestSession(t, maze.Coordinate{}, "...", "...", "...")
	logger, hook := logtest.NewNullLogger()

	l, snapshots, stop := runLoop(t, s, WithTickInterval(time.Hour), WithLogger(logger))

	initial := waitFor(t, snapshots, func(Snapshot) bool { return true })
	if initial.Player != (maze.Coordinate{}) {
		t.Errorf("initial Player = %v, want (0,0)", initial.Player)
	}

	ctx := context.Background()
	for _, dir := range []Direction{Right, Down, Right, Down} {
		if err := l.Send(ctx, Move(dir)); err != nil {
			t.Fatalf("Send(%v) error = %v", dir, err)
		}
	}

	final := waitFor(t, snapshots, Snapshot.GameOver)
	if final.Player != final.Exit {
		t.Errorf("final Player = %v, want exit %v", final.Player, final.Exit)
	}
	stop()

	var escaped bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "player escaped" {
			escaped = true
			if entry.Level != logrus.InfoLevel {
				t.Errorf("escape logged at %v, want info", entry.Level)
			}
			if _, ok := entry.Data["session"]; !ok {
				t.Error("escape entry missing session field")
			}
		}
	}
	if !escaped {
		t.Error("expected a \"player escaped\" log entry")
	}
}

func TestLoopTicksClock(t *testing.T) {
	s := newTestSession(t, maze.Coordinate{}, "...", "...", "...")
	_, snapshots, stop := runLoop(t, s, WithTickInterval(time.Millisecond))
	defer stop()

	waitFor(t, snapshots, func(snap Snapshot) bool { return snap.Elapsed >= 3 })
}

func TestLoopRestart(t *testing.T) {
	s := newTestSession(t, maze.Coordinate{Row: 1, Col: 2}, "...", "...", "...")
	l, snapshots, stop := runLoop(t, s, WithTickInterval(time.Hour))
	defer stop()

	ctx := context.Background()
	if err := l.Send(ctx, Move(Down)); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	over := waitFor(t, snapshots, Snapshot.GameOver)

	if err := l.Send(ctx, Restart()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	fresh := waitFor(t, snapshots, func(snap Snapshot) bool { return snap.ID != over.ID })

	if fresh.GameOver() || fresh.Elapsed != 0 {
		t.Errorf("after restart: GameOver = %v, Elapsed = %d", fresh.GameOver(), fresh.Elapsed)
	}
	if !fresh.Grid.IsOpen(fresh.Player) {
		t.Errorf("after restart: Player %v is not open", fresh.Player)
	}
}

func TestLoopSendAfterStop(t *testing.T) {
	s := newTestSession(t, maze.Coordinate{}, "..", "..")
	l, _, stop := runLoop(t, s, WithTickInterval(time.Hour))
	stop()

	if err := l.Send(context.Background(), Tick()); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("Send() after stop error = %v, want %v", err, ErrLoopStopped)
	}
}
