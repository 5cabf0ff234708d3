package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/game"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name       string
		key        tcell.Key
		ch         rune
		wantAction Action
		wantDir    game.Direction
	}{
		{"arrow up", tcell.KeyUp, 0, ActionMove, game.Up},
		{"arrow down", tcell.KeyDown, 0, ActionMove, game.Down},
		{"arrow left", tcell.KeyLeft, 0, ActionMove, game.Left},
		{"arrow right", tcell.KeyRight, 0, ActionMove, game.Right},
		{"vi up", tcell.KeyRune, 'k', ActionMove, game.Up},
		{"vi down", tcell.KeyRune, 'j', ActionMove, game.Down},
		{"vi left", tcell.KeyRune, 'h', ActionMove, game.Left},
		{"vi right", tcell.KeyRune, 'l', ActionMove, game.Right},
		{"restart", tcell.KeyRune, 'r', ActionRestart, 0},
		{"quit rune", tcell.KeyRune, 'Q', ActionQuit, 0},
		{"escape", tcell.KeyEscape, 0, ActionQuit, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0, ActionQuit, 0},
		{"other rune", tcell.KeyRune, 'x', ActionNone, 0},
		{"enter", tcell.KeyEnter, 0, ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := TranslateKey(tt.key, tt.ch)
			if action != tt.wantAction || dir != tt.wantDir {
				t.Errorf("TranslateKey() = (%v, %v), want (%v, %v)", action, dir, tt.wantAction, tt.wantDir)
			}
		})
	}
}
