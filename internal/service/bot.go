package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/oxono"
)

// Game is the part of the engine the bot plays through.
type Game interface {
	Phase() oxono.Phase
	HasTokens(symbol entity.Symbol) bool
	TotemPosition(symbol entity.Symbol) entity.Position
	LastTotemPosition() entity.Position
	AllPositions() []entity.Position
	EmptyPositions() []entity.Position
	IsValidMove(from, to entity.Position) bool
	IsValidInsert(posTotem, posToken entity.Position) bool

	Move(symbol entity.Symbol, to entity.Position) error
	Insert(posTotem, posToken entity.Position) error
}

type BotService interface {
	// Play performs one uniformly random legal action for the current phase.
	Play(game Game) error
}

type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

func (that *botService) Play(game Game) error {
	switch game.Phase() {
	case oxono.PhaseMove:
		return that.playRandomMove(game)
	case oxono.PhaseInsert:
		return that.playRandomInsert(game)
	default:
		return apperror.ErrGameFinished
	}
}

func (that *botService) playRandomMove(game Game) error {
	symbol := entity.Symbols[that.rng.Intn(len(entity.Symbols))]
	if !game.HasTokens(symbol) {
		symbol = symbol.Other()
	}

	for _, candidate := range []entity.Symbol{symbol, symbol.Other()} {
		if !game.HasTokens(candidate) {
			continue
		}

		from := game.TotemPosition(candidate)
		positions := game.AllPositions()
		that.rng.Shuffle(len(positions), func(i, j int) {
			positions[i], positions[j] = positions[j], positions[i]
		})

		for _, to := range positions {
			if !game.IsValidMove(from, to) {
				continue
			}

			if err := game.Move(candidate, to); err != nil {
				return fmt.Errorf("bot failed to move totem %s: %w", candidate, err)
			}

			return nil
		}
	}

	return fmt.Errorf("%w: no totem move available", apperror.ErrActionExhaustion)
}

func (that *botService) playRandomInsert(game Game) error {
	totem := game.LastTotemPosition()

	positions := game.EmptyPositions()
	that.rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	for _, pos := range positions {
		if !game.IsValidInsert(totem, pos) {
			continue
		}

		if err := game.Insert(totem, pos); err != nil {
			return fmt.Errorf("bot failed to insert at %s: %w", pos, err)
		}

		return nil
	}

	return fmt.Errorf("%w: no insertion available next to %s", apperror.ErrActionExhaustion, totem)
}
