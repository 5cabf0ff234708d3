package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/game"
)

// Action is what a key press asks the app to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRestart
	ActionQuit
)

// TranslateKey maps a key press to an action. Direction is only set for ActionMove.
func TranslateKey(key tcell.Key, ch rune) (Action, game.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyUp:
		return ActionMove, game.Up
	case tcell.KeyDown:
		return ActionMove, game.Down
	case tcell.KeyLeft:
		return ActionMove, game.Left
	case tcell.KeyRight:
		return ActionMove, game.Right
	case tcell.KeyRune:
		switch ch {
		case 'k':
			return ActionMove, game.Up
		case 'j':
			return ActionMove, game.Down
		case 'h':
			return ActionMove, game.Left
		case 'l':
			return ActionMove, game.Right
		case 'r', 'R':
			return ActionRestart, 0
		case 'q', 'Q':
			return ActionQuit, 0
		}
	}
	return ActionNone, 0
}
