// Package maze provides random grid maze generation.
package maze

// Cell represents a single grid cell.
type Cell rune

const (
	// CellOpen represents a traversable cell.
	CellOpen Cell = '.'
	// CellWall represents a cell that blocks movement.
	CellWall Cell = '#'
)

// IsOpen returns true if the cell can be walked on.
func (c Cell) IsOpen() bool {
	return c == CellOpen
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row, Col int
}

// Add returns the coordinate offset by the given row and column delta.
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}
