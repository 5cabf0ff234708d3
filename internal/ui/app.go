package ui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazerunner/internal/game"
)

// App connects a terminal screen to a game loop. Key presses become
// commands; every snapshot the loop publishes is drawn.
type App struct {
	screen   *Screen
	renderer *Renderer
	loop     *game.Loop
	log      logrus.FieldLogger

	mu   sync.Mutex // guards renderer and last
	last game.Snapshot
}

// NewApp creates an app that drives session on screen.
func NewApp(screen *Screen, styles Styles, session *game.Session, log logrus.FieldLogger) *App {
	a := &App{
		screen:   screen,
		renderer: NewRenderer(screen, styles),
		log:      log,
	}
	a.loop = game.NewLoop(session,
		game.WithObserver(a.draw),
		game.WithLogger(log),
	)
	return a
}

// Run plays until the player quits or ctx is cancelled, then closes the screen.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.pollInput(ctx, cancel)

	err := a.loop.Run(ctx)
	a.screen.Close()
	return err
}

// draw renders a snapshot and remembers it for resize redraws.
func (a *App) draw(snap game.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = snap
	a.renderer.Render(snap)
}

// redraw repaints the last snapshot after the terminal changed size.
func (a *App) redraw() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen.Sync()
	if a.last.Grid.Size() > 0 {
		a.renderer.Render(a.last)
	}
}

// pollInput reads terminal events until the screen is closed.
func (a *App) pollInput(ctx context.Context, quit context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ctx, quit, ev.Key(), ev.Rune())
		case *tcell.EventResize:
			a.redraw()
		}
	}
}

// handleKey forwards a key press to the game loop.
func (a *App) handleKey(ctx context.Context, quit context.CancelFunc, key tcell.Key, ch rune) {
	action, dir := TranslateKey(key, ch)

	var cmd game.Command
	switch action {
	case ActionQuit:
		a.log.Debug("quit requested")
		quit()
		return
	case ActionMove:
		cmd = game.Move(dir)
	case ActionRestart:
		cmd = game.Restart()
	default:
		return
	}

	if err := a.loop.Send(ctx, cmd); err != nil {
		a.log.WithError(err).WithField("command", cmd.Kind).Debug("command dropped")
	}
}
