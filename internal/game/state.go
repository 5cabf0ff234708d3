// Package game provides the maze run state machine and the loop that drives it.
package game

// Status represents the current game status.
type Status int

const (
	// StatusPlaying is the initial status; the player may move and the clock runs.
	StatusPlaying Status = iota
	// StatusEscaped is terminal: the player reached the exit.
	StatusEscaped
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offset for the direction.
// ok is false for an unknown direction.
func (d Direction) Delta() (dRow, dCol int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
