package apperror

import "errors"

var (
	ErrWrongPhase       = errors.New("action is not allowed in the current phase")
	ErrGameFinished     = errors.New("game is already finished")
	ErrIllegalMove      = errors.New("illegal totem move")
	ErrIllegalInsert    = errors.New("illegal token insertion")
	ErrOutOfBounds      = errors.New("position is out of bounds")
	ErrNoTokensLeft     = errors.New("no tokens left for this symbol")
	ErrEmptyHistory     = errors.New("nothing to undo or redo")
	ErrActionExhaustion = errors.New("no legal action found")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrReentrantCall    = errors.New("game cannot be mutated while notifying observers")
	ErrNotYourTurn      = errors.New("not your turn")
)
