// Package ui is the terminal front end: it draws game snapshots with tcell
// and turns key presses into game commands.
package ui

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface used by Renderer.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Screen wraps tcell.Screen with the calls the game needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal. Pending PollEvent calls return nil.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Clear() { s.screen.Clear() }

func (s *Screen) Show() { s.screen.Show() }

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() { s.screen.Sync() }

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}
