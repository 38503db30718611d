// Package history keeps the linear undo/redo log of board actions.
package history

import (
	"fmt"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
)

type Kind int

const (
	KindMove Kind = iota
	KindInsert
)

func (k Kind) String() string {
	if k == KindInsert {
		return "insert"
	}
	return "move"
}

// Action is either a totem move or a token insertion. It carries enough data
// to be applied and reverted against a Board.
type Action struct {
	Kind Kind

	// move
	Symbol entity.Symbol
	From   entity.Position
	To     entity.Position

	// insert
	Token    entity.Pawn
	Position entity.Position
}

func NewMove(symbol entity.Symbol, from, to entity.Position) Action {
	return Action{Kind: KindMove, Symbol: symbol, From: from, To: to}
}

func NewInsert(token entity.Pawn, position entity.Position) Action {
	return Action{Kind: KindInsert, Token: token, Position: position}
}

// Apply performs the forward mutation.
func (that Action) Apply(board *entity.Board) {
	switch that.Kind {
	case KindMove:
		board.MoveTotem(that.Symbol, that.To)
	case KindInsert:
		board.InsertToken(that.Token, that.Position)
	}
}

// Revert performs the exact inverse of Apply.
func (that Action) Revert(board *entity.Board) {
	switch that.Kind {
	case KindMove:
		board.MoveTotem(that.Symbol, that.From)
	case KindInsert:
		board.RemoveToken(that.Position)
	}
}

func (that Action) String() string {
	if that.Kind == KindInsert {
		return fmt.Sprintf("insert %s at %s", that.Token, that.Position)
	}
	return fmt.Sprintf("move %s %s->%s", that.Symbol, that.From, that.To)
}

// History holds the undo and redo stacks. The redo stack is dropped on every new action.
type History struct {
	board *entity.Board
	undo  []Action
	redo  []Action
}

func New(board *entity.Board) *History {
	return &History{board: board}
}

// Do applies the action and records it.
func (that *History) Do(action Action) {
	action.Apply(that.board)
	that.undo = append(that.undo, action)
	that.redo = that.redo[:0]
}

func (that *History) Undo() (Action, error) {
	if len(that.undo) == 0 {
		return Action{}, fmt.Errorf("%w: undo stack is empty", apperror.ErrEmptyHistory)
	}

	action := that.undo[len(that.undo)-1]
	that.undo = that.undo[:len(that.undo)-1]
	action.Revert(that.board)
	that.redo = append(that.redo, action)

	return action, nil
}

func (that *History) Redo() (Action, error) {
	if len(that.redo) == 0 {
		return Action{}, fmt.Errorf("%w: redo stack is empty", apperror.ErrEmptyHistory)
	}

	action := that.redo[len(that.redo)-1]
	that.redo = that.redo[:len(that.redo)-1]
	action.Apply(that.board)
	that.undo = append(that.undo, action)

	return action, nil
}

func (that *History) UndoDepth() int {
	return len(that.undo)
}

func (that *History) RedoDepth() int {
	return len(that.redo)
}

// Last returns the most recent action of the given kind still on the undo stack.
func (that *History) Last(kind Kind) (Action, bool) {
	for i := len(that.undo) - 1; i >= 0; i-- {
		if that.undo[i].Kind == kind {
			return that.undo[i], true
		}
	}

	return Action{}, false
}
