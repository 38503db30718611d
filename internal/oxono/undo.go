package oxono

import (
	"fmt"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/history"
)

// rewindDepth is how many actions an undo from MOVE reverses: the opponent's
// insert and move, then the current player's insert. The current player is
// left with their move done and their insertion pending.
const rewindDepth = 3

// Undo works on whole turns from the current player's point of view.
//
// From INSERT it takes back the pending move. From MOVE it skips back over the
// opponent's turn to the current player's pending insertion, giving both
// players their tokens back. On the very first turn there is no opponent turn
// and only the insertion is taken back.
func (that *Game) Undo() error {
	if err := that.checkRewind(); err != nil {
		return err
	}

	if that.history.UndoDepth() == 0 {
		return fmt.Errorf("%w: undo stack is empty", apperror.ErrEmptyHistory)
	}

	switch that.phase {
	case PhaseInsert:
		if _, err := that.history.Undo(); err != nil {
			return fmt.Errorf("failed to undo move: %w", err)
		}
		that.phase = PhaseMove
	case PhaseMove:
		if that.history.UndoDepth() < rewindDepth {
			if err := that.undoLoneTurn(); err != nil {
				return err
			}
			break
		}

		that.creditLastToken()
		for i := 0; i < rewindDepth; i++ {
			if _, err := that.history.Undo(); err != nil {
				return fmt.Errorf("failed to undo turn: %w", err)
			}
		}
		that.creditLastToken()
		that.phase = PhaseInsert
	}

	that.syncLastMove()
	that.notify()

	return nil
}

// Redo mirrors Undo.
func (that *Game) Redo() error {
	if err := that.checkRewind(); err != nil {
		return err
	}

	if that.history.RedoDepth() == 0 {
		return fmt.Errorf("%w: redo stack is empty", apperror.ErrEmptyHistory)
	}

	switch that.phase {
	case PhaseMove:
		if _, err := that.history.Redo(); err != nil {
			return fmt.Errorf("failed to redo move: %w", err)
		}
		that.phase = PhaseInsert
	case PhaseInsert:
		if that.history.RedoDepth() < rewindDepth {
			if err := that.redoLoneTurn(); err != nil {
				return err
			}
			break
		}

		for i := 0; i < rewindDepth; i++ {
			if _, err := that.history.Redo(); err != nil {
				return fmt.Errorf("failed to redo turn: %w", err)
			}
			if i == 0 || i == rewindDepth-1 {
				that.debitNextToken()
			}
		}
		that.phase = PhaseMove
	}

	that.syncLastMove()
	that.notify()

	return nil
}

// undoLoneTurn handles the first turn of the game, when there is no opponent
// turn to skip: only the insertion is taken back and its author plays again.
func (that *Game) undoLoneTurn() error {
	if _, err := that.history.Undo(); err != nil {
		return fmt.Errorf("failed to undo insertion: %w", err)
	}

	that.creditLastToken()
	that.switchPlayer()
	that.phase = PhaseInsert

	return nil
}

func (that *Game) redoLoneTurn() error {
	if _, err := that.history.Redo(); err != nil {
		return fmt.Errorf("failed to redo insertion: %w", err)
	}

	that.debitNextToken()
	that.switchPlayer()
	that.phase = PhaseMove

	return nil
}

func (that *Game) checkRewind() error {
	if that.notifying {
		return apperror.ErrReentrantCall
	}

	if that.phase == PhaseEnded {
		return apperror.ErrGameFinished
	}

	return nil
}

// creditLastToken gives the most recently inserted token back to its owner.
func (that *Game) creditLastToken() {
	if len(that.undoTokens) == 0 {
		return
	}

	token := that.undoTokens[len(that.undoTokens)-1]
	that.undoTokens = that.undoTokens[:len(that.undoTokens)-1]
	that.player(token.Color).Increase(token.Symbol)
	that.redoTokens = append(that.redoTokens, token)
}

// debitNextToken takes a replayed token out of its owner's inventory again.
func (that *Game) debitNextToken() {
	if len(that.redoTokens) == 0 {
		return
	}

	token := that.redoTokens[len(that.redoTokens)-1]
	that.redoTokens = that.redoTokens[:len(that.redoTokens)-1]
	// the count was credited by the matching undo, so it cannot be exhausted here
	_ = that.player(token.Color).Decrease(token.Symbol)
	that.undoTokens = append(that.undoTokens, token)
}

// syncLastMove restores the symbol to insert and the last totem position from
// the most recent move still in the history.
func (that *Game) syncLastMove() {
	move, ok := that.history.Last(history.KindMove)
	if !ok {
		return
	}

	that.toInsert = move.Symbol
	that.lastTotem = move.To
	if that.phase == PhaseInsert && that.toPlay == that.pink {
		that.lastTotemPink = move.To
		that.lastSymbolPink = move.Symbol
	}
}
