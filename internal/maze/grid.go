package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedGrid is returned by ParseGrid when the rows do not form a square.
var ErrRaggedGrid = errors.New("grid rows must form a square")

// Grid is an immutable square matrix of cells.
type Grid struct {
	size  int
	cells [][]Cell
}

// newOpenGrid creates a size x size grid with every cell open.
func newOpenGrid(size int) [][]Cell {
	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
		for col := range cells[row] {
			cells[row][col] = CellOpen
		}
	}
	return cells
}

// ParseGrid builds a grid from rows of '.' (open) and '#' (wall) characters.
// The corner cells (0,0) and (N-1,N-1) are forced open.
func ParseGrid(rows []string) (Grid, error) {
	size := len(rows)
	if size < MinSize {
		return Grid{}, fmt.Errorf("%w: got %d rows", ErrGridTooSmall, size)
	}

	cells := newOpenGrid(size)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != size {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, row, len(runes), size)
		}
		for col, r := range runes {
			switch Cell(r) {
			case CellOpen, CellWall:
				cells[row][col] = Cell(r)
			default:
				return Grid{}, fmt.Errorf("invalid cell %q at (%d,%d)", r, row, col)
			}
		}
	}

	g := Grid{size: size, cells: cells}
	g.openCorners()
	return g, nil
}

// openCorners forces the origin and exit cells open.
func (g Grid) openCorners() {
	g.cells[0][0] = CellOpen
	exit := g.Exit()
	g.cells[exit.Row][exit.Col] = CellOpen
}

// Size returns the grid dimension N.
func (g Grid) Size() int {
	return g.size
}

// Exit returns the fixed exit coordinate (N-1, N-1).
func (g Grid) Exit() Coordinate {
	return Coordinate{Row: g.size - 1, Col: g.size - 1}
}

// InBounds returns true if the coordinate lies inside the grid.
func (g Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the cell at the given coordinate.
// Coordinates outside the grid are reported as walls.
func (g Grid) At(c Coordinate) Cell {
	if !g.InBounds(c) {
		return CellWall
	}
	return g.cells[c.Row][c.Col]
}

// IsOpen returns true if the coordinate is inside the grid and traversable.
func (g Grid) IsOpen(c Coordinate) bool {
	return g.At(c).IsOpen()
}

// OpenCount returns the number of open cells.
func (g Grid) OpenCount() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsOpen() {
				count++
			}
		}
	}
	return count
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for row, cells := range g.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range cells {
			b.WriteRune(cell.Rune())
		}
	}
	return b.String()
}
