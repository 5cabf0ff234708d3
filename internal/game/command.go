package game

import "context"

// CommandKind identifies a command sent to a Session.
type CommandKind int

const (
	CommandTick CommandKind = iota + 1
	CommandMove
	CommandRestart
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CommandTick:
		return "tick"
	case CommandMove:
		return "move"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Command is a typed request to mutate a Session.
type Command struct {
	Kind      CommandKind
	Direction Direction // CommandMove only
}

// Tick returns a command that advances the clock by one second.
func Tick() Command { return Command{Kind: CommandTick} }

// Move returns a command that attempts a move in the given direction.
func Move(d Direction) Command { return Command{Kind: CommandMove, Direction: d} }

// Restart returns a command that regenerates the maze with the session's current parameters.
func Restart() Command { return Command{Kind: CommandRestart} }

// Apply executes a command against the session and reports whether the
// observable state changed. Only a restart can fail.
func (s *Session) Apply(ctx context.Context, cmd Command) (changed bool, err error) {
	switch cmd.Kind {
	case CommandTick:
		before := s.elapsed
		s.Tick()
		return s.elapsed != before, nil
	case CommandMove:
		wasOver := s.GameOver()
		res := s.AttemptMove(ctx, cmd.Direction)
		return res.Moved || res.GameOver != wasOver, nil
	case CommandRestart:
		if err := s.Restart(ctx, s.cfg.Size, s.cfg.WallProbability); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}
