package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/oxono/internal/apperror"
)

const MinBoardSize = 4

var ErrInvalidBoardSize = errors.New("board size must be an even number of at least 4")

// Board is the N×N grid. The two totems are addressed by symbol through fixed slots.
//
// Read-only checks never mutate the grid and mutators never validate: callers
// are expected to ask IsValidMove/IsValidInsert first.
type Board struct {
	size   int
	cells  []*Pawn
	totems [2]Position
}

// NewBoard creates an empty board with X at (mid-1, mid-1) and O at (mid, mid).
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, size)
	}

	b := &Board{
		size:  size,
		cells: make([]*Pawn, size*size),
	}

	mid := size / 2
	b.placeTotem(X, Pos(mid-1, mid-1))
	b.placeTotem(O, Pos(mid, mid))

	return b, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) index(p Position) int {
	return p.Row*that.size + p.Col
}

func (that *Board) IsWithinBounds(p Position) bool {
	return p.Row >= 0 && p.Row < that.size && p.Col >= 0 && p.Col < that.size
}

// IsEmpty reports whether an in-bounds cell is free. Out-of-bounds cells are never empty.
func (that *Board) IsEmpty(p Position) bool {
	return that.IsWithinBounds(p) && that.cells[that.index(p)] == nil
}

// At returns the pawn at p. ok is false for empty or out-of-bounds cells.
func (that *Board) At(p Position) (pawn Pawn, ok bool) {
	if !that.IsWithinBounds(p) {
		return Pawn{}, false
	}

	cell := that.cells[that.index(p)]
	if cell == nil {
		return Pawn{}, false
	}

	return *cell, true
}

// PawnAt is At with an explicit error for positions outside the grid.
func (that *Board) PawnAt(p Position) (Pawn, bool, error) {
	if !that.IsWithinBounds(p) {
		return Pawn{}, false, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, p)
	}

	pawn, ok := that.At(p)

	return pawn, ok, nil
}

// TotemPosition returns where the totem of the given symbol currently stands.
func (that *Board) TotemPosition(symbol Symbol) Position {
	return that.totems[symbol]
}

func (that *Board) IsFull() bool {
	return that.CountEmpty() == 0
}

func (that *Board) CountEmpty() int {
	count := 0
	for _, cell := range that.cells {
		if cell == nil {
			count++
		}
	}

	return count
}

// EmptyPositions lists every free cell in row-major order.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, that.CountEmpty())
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			p := Pos(row, col)
			if that.IsEmpty(p) {
				positions = append(positions, p)
			}
		}
	}

	return positions
}

// AllPositions lists every cell of the grid in row-major order.
func (that *Board) AllPositions() []Position {
	positions := make([]Position, 0, len(that.cells))
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			positions = append(positions, Pos(row, col))
		}
	}

	return positions
}

func (that *Board) occupied(p Position) bool {
	return that.IsWithinBounds(p) && that.cells[that.index(p)] != nil
}

// IsEnclaved reports whether every in-bounds orthogonal neighbour of p is occupied.
func (that *Board) IsEnclaved(p Position) bool {
	for _, d := range orthogonal {
		n := p.Add(d[0], d[1])
		if that.IsWithinBounds(n) && !that.occupied(n) {
			return false
		}
	}

	return true
}

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsAdjacent reports whether a and b are orthogonal neighbours.
func IsAdjacent(a, b Position) bool {
	dRow, dCol := a.Row-b.Row, a.Col-b.Col

	return (dRow == 0 && (dCol == 1 || dCol == -1)) || (dCol == 0 && (dRow == 1 || dRow == -1))
}

// IsValidMove checks a totem move from `from` to `to`.
func (that *Board) IsValidMove(from, to Position) bool {
	if !that.IsEmpty(to) {
		return false
	}

	if that.IsEnclaved(from) {
		return that.IsValidMoveWhileEnclaved(from, to)
	}

	return that.isClearSlide(from, to)
}

// isClearSlide accepts a purely horizontal or vertical move over empty cells.
func (that *Board) isClearSlide(from, to Position) bool {
	if from == to || (from.Row != to.Row && from.Col != to.Col) {
		return false
	}

	dRow, dCol := step(from.Row, to.Row), step(from.Col, to.Col)
	for p := from.Add(dRow, dCol); p != to; p = p.Add(dRow, dCol) {
		if that.occupied(p) {
			return false
		}
	}

	return true
}

// IsValidMoveWhileEnclaved applies the jump rule: the totem hops over the
// occupied run next to it and lands on the first empty cell past it. When both
// its row and column are full it may land on any empty cell.
func (that *Board) IsValidMoveWhileEnclaved(from, to Position) bool {
	if !that.IsEmpty(to) {
		return false
	}

	if that.AreLineAndColumnFull(from) {
		return true
	}

	if from.Row != to.Row && from.Col != to.Col {
		return false
	}

	dRow, dCol := step(from.Row, to.Row), step(from.Col, to.Col)
	foundBarrier := false
	for p := from.Add(dRow, dCol); that.IsWithinBounds(p); p = p.Add(dRow, dCol) {
		if that.occupied(p) {
			foundBarrier = true
			continue
		}

		if foundBarrier {
			return p == to
		}
	}

	return false
}

// AreLineAndColumnFull reports whether every cell of p's row and column is occupied.
func (that *Board) AreLineAndColumnFull(p Position) bool {
	for i := 0; i < that.size; i++ {
		if !that.occupied(Pos(p.Row, i)) || !that.occupied(Pos(i, p.Col)) {
			return false
		}
	}

	return true
}

// IsValidInsert checks a token insertion next to the totem standing at posTotem.
func (that *Board) IsValidInsert(posTotem, posToken Position) bool {
	if !that.IsWithinBounds(posTotem) || !that.IsEmpty(posToken) {
		return false
	}

	if that.IsEnclaved(posTotem) {
		return true
	}

	return IsAdjacent(posTotem, posToken)
}

// MoveTotem relocates the totem of the given symbol without any check.
func (that *Board) MoveTotem(symbol Symbol, to Position) {
	from := that.totems[symbol]
	that.cells[that.index(from)] = nil
	that.placeTotem(symbol, to)
}

func (that *Board) placeTotem(symbol Symbol, p Position) {
	totem := NewTotem(symbol)
	that.cells[that.index(p)] = &totem
	that.totems[symbol] = p
}

// InsertToken places a token without any check.
func (that *Board) InsertToken(token Pawn, p Position) {
	that.cells[that.index(p)] = &token
}

// RemoveToken clears a cell without any check.
func (that *Board) RemoveToken(p Position) {
	that.cells[that.index(p)] = nil
}

// Clone returns a deep copy of the board.
func (that *Board) Clone() *Board {
	clone := &Board{
		size:   that.size,
		cells:  make([]*Pawn, len(that.cells)),
		totems: that.totems,
	}

	for i, cell := range that.cells {
		if cell != nil {
			pawn := *cell
			clone.cells[i] = &pawn
		}
	}

	return clone
}

func (that *Board) String() string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < that.size; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < that.size; row++ {
		fmt.Fprintf(&sb, "%3d", row)
		for col := 0; col < that.size; col++ {
			pawn, ok := that.At(Pos(row, col))
			if !ok {
				sb.WriteString("  .")
				continue
			}
			fmt.Fprintf(&sb, "%3s", pawn)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func step(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}
