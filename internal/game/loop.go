package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// TickInterval is the real-time cadence of the clock.
	TickInterval = time.Second

	commandBuffer = 16
)

// ErrLoopStopped is returned by Send after Run has returned.
var ErrLoopStopped = errors.New("game loop stopped")

// Observer receives a snapshot after every state change. It runs on the
// loop goroutine and must not block for long.
type Observer func(Snapshot)

// Loop owns a Session and is the only goroutine that mutates it. Clock ticks
// and commands from Send are applied one at a time.
type Loop struct {
	session  *Session
	commands chan Command
	done     chan struct{}
	observe  Observer
	log      logrus.FieldLogger
	interval time.Duration
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithObserver sets the function notified after every state change.
func WithObserver(o Observer) LoopOption {
	return func(l *Loop) { l.observe = o }
}

// WithLogger sets the logger used for game events.
func WithLogger(log logrus.FieldLogger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// WithTickInterval overrides the clock cadence.
func WithTickInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.interval = d }
}

// NewLoop creates a loop driving the given session.
func NewLoop(session *Session, opts ...LoopOption) *Loop {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	l := &Loop{
		session:  session,
		commands: make(chan Command, commandBuffer),
		done:     make(chan struct{}),
		observe:  func(Snapshot) {},
		log:      discard,
		interval: TickInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Send queues a command for the loop. It blocks while the queue is full.
func (l *Loop) Send(ctx context.Context, cmd Command) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}

	select {
	case l.commands <- cmd:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies ticks and commands until ctx is cancelled. The clock stops
// when the player escapes and restarts with a new game.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger().WithField("start", l.session.Start()).Info("game started")
	l.observe(l.session.Snapshot())

	for {
		select {
		case <-ctx.Done():
			l.logger().Debug("game loop stopped")
			return nil
		case <-ticker.C:
			l.apply(ctx, Tick(), ticker)
		case cmd := <-l.commands:
			l.apply(ctx, cmd, ticker)
		}
	}
}

// apply runs one command and keeps the ticker in step with the game status.
func (l *Loop) apply(ctx context.Context, cmd Command, ticker *time.Ticker) {
	wasOver := l.session.GameOver()

	changed, err := l.session.Apply(ctx, cmd)
	if err != nil {
		l.logger().WithError(err).WithField("command", cmd.Kind).Error("command failed")
		return
	}

	switch {
	case cmd.Kind == CommandRestart:
		ticker.Reset(l.interval)
		l.logger().WithField("start", l.session.Start()).Info("game restarted")
	case !wasOver && l.session.GameOver():
		ticker.Stop()
		l.logger().WithField("elapsed_seconds", l.session.Elapsed()).Info("player escaped")
	}

	if changed {
		l.observe(l.session.Snapshot())
	}
}

func (l *Loop) logger() logrus.FieldLogger {
	return l.log.WithField("session", l.session.ID())
}
