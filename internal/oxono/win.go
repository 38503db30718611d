package oxono

import (
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/history"
)

const alignToWin = 4

// CheckWin looks for four aligned tokens through pos sharing either the symbol
// or the colour of the token at pos. A win ends the game.
func (that *Game) CheckWin(pos entity.Position) bool {
	if !that.isWinningCell(pos) {
		return false
	}

	that.phase = PhaseEnded

	return true
}

func (that *Game) isWinningCell(pos entity.Position) bool {
	pawn, ok := that.board.At(pos)
	if !ok || pawn.IsTotem() {
		return false
	}

	sameSymbol := func(p entity.Pawn) bool { return p.Symbol == pawn.Symbol }
	sameColor := func(p entity.Pawn) bool { return p.Color == pawn.Color }

	for _, axis := range [2][2]int{{0, 1}, {1, 0}} {
		for _, match := range []func(entity.Pawn) bool{sameSymbol, sameColor} {
			run := 1 +
				that.countInDirection(pos, axis[0], axis[1], match) +
				that.countInDirection(pos, -axis[0], -axis[1], match)
			if run >= alignToWin {
				return true
			}
		}
	}

	return false
}

// countInDirection counts contiguous tokens accepted by match, stopping at an
// empty cell, a totem or the edge of the board.
func (that *Game) countInDirection(start entity.Position, dRow, dCol int, match func(entity.Pawn) bool) int {
	count := 0
	for p := start.Add(dRow, dCol); ; p = p.Add(dRow, dCol) {
		pawn, ok := that.board.At(p)
		if !ok || pawn.IsTotem() || !match(pawn) {
			return count
		}
		count++
	}
}

// Won evaluates the win condition on the last inserted token still on the board.
func (that *Game) Won() bool {
	last, ok := that.history.Last(history.KindInsert)
	if !ok {
		return false
	}

	return that.CheckWin(last.Position)
}

// Drew reports a game nobody can win anymore: no winning line and either a
// full board or a player to play who has no legal totem move left.
// Inventories hold N²-4 tokens for N²-2 free cells, so running out of tokens
// is the usual way a game without a winner ends.
func (that *Game) Drew() bool {
	if that.surrendered || that.phase == PhaseInsert || that.Won() {
		return false
	}

	return that.board.IsFull() || that.stalled()
}

// stalled reports that the player to play holds no token for any totem that
// can still move.
func (that *Game) stalled() bool {
	for _, symbol := range entity.Symbols {
		if !that.toPlay.HasTokens(symbol) {
			continue
		}

		from := that.board.TotemPosition(symbol)
		for _, to := range that.board.EmptyPositions() {
			if that.board.IsValidMove(from, to) {
				return false
			}
		}
	}

	return true
}

// Winner returns the colour of the player who completed the winning line.
func (that *Game) Winner() (entity.Color, bool) {
	if !that.Won() {
		return 0, false
	}

	last, _ := that.history.Last(history.KindInsert)

	return last.Token.Color, true
}
