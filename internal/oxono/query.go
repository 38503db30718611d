package oxono

import (
	"github.com/rocketscienceinc/oxono/internal/entity"
)

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Phase() Phase {
	return that.phase
}

func (that *Game) IsEnded() bool {
	return that.phase == PhaseEnded
}

// ToPlay returns the colour of the player whose turn it is.
func (that *Game) ToPlay() entity.Color {
	return that.toPlay.Color
}

// ToInsert is the symbol of the token to insert, fixed by the last moved totem.
func (that *Game) ToInsert() entity.Symbol {
	return that.toInsert
}

// PawnAt returns the pawn at p; ok is false when the cell is empty.
func (that *Game) PawnAt(p entity.Position) (pawn entity.Pawn, ok bool, err error) {
	return that.board.PawnAt(p)
}

func (that *Game) TokenCount(color entity.Color, symbol entity.Symbol) int {
	return that.player(color).Remaining(symbol)
}

// HasTokens reports whether the player to play still holds tokens of symbol.
func (that *Game) HasTokens(symbol entity.Symbol) bool {
	return that.toPlay.HasTokens(symbol)
}

func (that *Game) CountEmptyTiles() int {
	return that.board.CountEmpty()
}

func (that *Game) EmptyPositions() []entity.Position {
	return that.board.EmptyPositions()
}

func (that *Game) AllPositions() []entity.Position {
	return that.board.AllPositions()
}

func (that *Game) TotemPosition(symbol entity.Symbol) entity.Position {
	return that.board.TotemPosition(symbol)
}

func (that *Game) IsWithinBounds(p entity.Position) bool {
	return that.board.IsWithinBounds(p)
}

func (that *Game) IsValidMove(from, to entity.Position) bool {
	return that.board.IsValidMove(from, to)
}

func (that *Game) IsValidInsert(posTotem, posToken entity.Position) bool {
	return that.board.IsValidInsert(posTotem, posToken)
}

// LastTotemPosition is where the most recently moved totem landed.
func (that *Game) LastTotemPosition() entity.Position {
	return that.lastTotem
}

func (that *Game) LastTotemPositionPink() entity.Position {
	return that.lastTotemPink
}

func (that *Game) LastSymbolMovedByPink() entity.Symbol {
	return that.lastSymbolPink
}

func (that *Game) CanUndo() bool {
	return that.phase != PhaseEnded && that.history.UndoDepth() > 0
}

func (that *Game) CanRedo() bool {
	return that.phase != PhaseEnded && that.history.RedoDepth() > 0
}

// Board returns a copy of the grid for rendering.
func (that *Game) Board() *entity.Board {
	return that.board.Clone()
}
