package entity

import "fmt"

// Position is a (row, col) cell address. Bounds are checked by the Board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position shifted by (dRow, dCol).
func (that Position) Add(dRow, dCol int) Position {
	return Position{Row: that.Row + dRow, Col: that.Col + dCol}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
