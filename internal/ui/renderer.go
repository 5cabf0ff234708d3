package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/game"
	"github.com/samdwyer/mazerunner/internal/maze"
)

const (
	title      = "Maze Runner"
	helpText   = "arrows/hjkl move  r restart  q quit"
	gridTop    = 4 // first screen row of the maze
	cellWidth  = 2 // columns per cell, keeps cells roughly square
	playerRune = '@'
	exitRune   = 'E'
)

// Renderer draws snapshots onto a canvas.
type Renderer struct {
	canvas Canvas
	styles Styles
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(canvas Canvas, styles Styles) *Renderer {
	return &Renderer{canvas: canvas, styles: styles}
}

// Render draws the header, the maze, the exit and the player.
func (r *Renderer) Render(snap game.Snapshot) {
	r.canvas.Clear()

	r.text(0, 0, title, r.styles.Text)
	r.text(0, 1, fmt.Sprintf("Time: %ds", snap.Elapsed), r.styles.Timer)
	if snap.GameOver() {
		r.text(0, 2, fmt.Sprintf("You Escaped in %d seconds!", snap.Elapsed), r.styles.Exit)
	} else {
		r.text(0, 2, helpText, r.styles.Text)
	}

	size := snap.Grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := maze.Coordinate{Row: row, Col: col}
			cell := snap.Grid.At(c)
			r.cell(c, cell.Rune(), r.cellStyle(cell))
		}
	}

	r.cell(snap.Exit, exitRune, r.styles.Exit)
	r.cell(snap.Player, playerRune, r.styles.Player)

	r.canvas.Show()
}

// cellStyle returns the style for a maze cell.
func (r *Renderer) cellStyle(cell maze.Cell) tcell.Style {
	if cell.IsOpen() {
		return r.styles.Path
	}
	return r.styles.Wall
}

// cell draws a glyph at a maze coordinate, padded to cellWidth.
func (r *Renderer) cell(c maze.Coordinate, glyph rune, style tcell.Style) {
	x := c.Col * cellWidth
	y := gridTop + c.Row
	r.canvas.SetContent(x, y, glyph, style)
	for i := 1; i < cellWidth; i++ {
		r.canvas.SetContent(x+i, y, ' ', style)
	}
}

// text writes a string starting at x, y.
func (r *Renderer) text(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}
