// Package oxono holds the turn state machine of the game: a turn is one totem
// move followed by one token insertion by the same player.
package oxono

import (
	"fmt"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/history"
)

type Phase int

const (
	PhaseMove Phase = iota
	PhaseInsert
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseMove:
		return "MOVE"
	case PhaseInsert:
		return "INSERT"
	case PhaseEnded:
		return "ENDED"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Game is the only mutator of the board. Pink plays first.
type Game struct {
	board   *entity.Board
	history *history.History

	pink   *entity.Player
	black  *entity.Player
	toPlay *entity.Player

	phase       Phase
	toInsert    entity.Symbol
	surrendered bool

	lastTotem      entity.Position
	lastTotemPink  entity.Position
	lastSymbolPink entity.Symbol

	// tokens inserted per turn, needed to give inventory back on undo
	undoTokens []entity.Pawn
	redoTokens []entity.Pawn

	observers
}

// New creates a game on a fresh board of the given size.
func New(size int) (*Game, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return NewGame(board, entity.NewPlayer(entity.Pink, size), entity.NewPlayer(entity.Black, size)), nil
}

func NewGame(board *entity.Board, pink, black *entity.Player) *Game {
	return &Game{
		board:     board,
		history:   history.New(board),
		pink:      pink,
		black:     black,
		toPlay:    pink,
		phase:     PhaseMove,
		lastTotem: board.TotemPosition(entity.X),
	}
}

// Move slides (or jumps) the totem of the given symbol to `to`.
func (that *Game) Move(symbol entity.Symbol, to entity.Position) error {
	if err := that.checkPhase(PhaseMove); err != nil {
		return err
	}

	if !that.toPlay.HasTokens(symbol) {
		return fmt.Errorf("%w: %s cannot move totem %s", apperror.ErrNoTokensLeft, that.toPlay, symbol)
	}

	from := that.board.TotemPosition(symbol)
	if !that.board.IsWithinBounds(to) {
		return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrOutOfBounds, to)
	}

	if !that.board.IsValidMove(from, to) {
		return fmt.Errorf("%w: totem %s from %s to %s", apperror.ErrIllegalMove, symbol, from, to)
	}

	that.history.Do(history.NewMove(symbol, from, to))
	that.redoTokens = that.redoTokens[:0]

	that.toInsert = symbol
	that.lastTotem = to
	if that.toPlay == that.pink {
		that.lastTotemPink = to
		that.lastSymbolPink = symbol
	}

	that.phase = PhaseInsert
	that.notify()

	return nil
}

// Insert places a token of the current player, with the symbol of the totem
// just moved, at posToken. posTotem must be where that totem stands.
func (that *Game) Insert(posTotem, posToken entity.Position) error {
	if err := that.checkPhase(PhaseInsert); err != nil {
		return err
	}

	if !that.board.IsWithinBounds(posToken) {
		return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalInsert, apperror.ErrOutOfBounds, posToken)
	}

	if posTotem != that.board.TotemPosition(that.toInsert) {
		return fmt.Errorf("%w: no %s totem at %s", apperror.ErrIllegalInsert, that.toInsert, posTotem)
	}

	if !that.board.IsValidInsert(posTotem, posToken) {
		return fmt.Errorf("%w: %s next to totem at %s", apperror.ErrIllegalInsert, posToken, posTotem)
	}

	token := entity.NewToken(that.toPlay.Color, that.toInsert)
	if err := that.toPlay.Decrease(token.Symbol); err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	that.history.Do(history.NewInsert(token, posToken))
	that.redoTokens = that.redoTokens[:0]
	that.undoTokens = append(that.undoTokens, token)

	if !that.CheckWin(posToken) {
		that.switchPlayer()
		that.phase = PhaseMove

		// the next player cannot start a turn: the game ends in a draw
		if that.stalled() {
			that.phase = PhaseEnded
		}
	}

	that.notify()

	return nil
}

// InsertNext inserts next to the totem that was just moved.
func (that *Game) InsertNext(posToken entity.Position) error {
	return that.Insert(that.board.TotemPosition(that.toInsert), posToken)
}

// Surrender ends the game whatever the phase. History is left untouched.
func (that *Game) Surrender() {
	that.phase = PhaseEnded
	that.surrendered = true
}

func (that *Game) checkPhase(want Phase) error {
	if that.notifying {
		return apperror.ErrReentrantCall
	}

	switch that.phase {
	case want:
		return nil
	case PhaseEnded:
		return fmt.Errorf("%w: %w", apperror.ErrWrongPhase, apperror.ErrGameFinished)
	default:
		return fmt.Errorf("%w: expected %s, got %s", apperror.ErrWrongPhase, want, that.phase)
	}
}

func (that *Game) switchPlayer() {
	if that.toPlay == that.pink {
		that.toPlay = that.black
		return
	}
	that.toPlay = that.pink
}

func (that *Game) player(color entity.Color) *entity.Player {
	if color == entity.Pink {
		return that.pink
	}
	return that.black
}
