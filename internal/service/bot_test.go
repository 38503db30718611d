package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/oxono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBot(seed int64) BotService {
	return NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // deterministic on purpose
}

func newGame(t *testing.T) *oxono.Game {
	t.Helper()

	game, err := oxono.New(6)
	require.NoError(t, err)

	return game
}

func TestBotService_Play(t *testing.T) {
	t.Run("Move phase", func(t *testing.T) {
		// Given: a new game
		game := newGame(t)
		bot := newBot(1)

		// When: the bot plays
		err := bot.Play(game)
		require.NoError(t, err)

		// Then: exactly one totem left its opening cell and an insertion is pending
		assert.Equal(t, oxono.PhaseInsert, game.Phase())
		moved := game.ToInsert()
		assert.Equal(t, game.LastTotemPosition(), game.TotemPosition(moved))
		opening := map[entity.Symbol]entity.Position{entity.X: entity.Pos(2, 2), entity.O: entity.Pos(3, 3)}
		assert.NotEqual(t, opening[moved], game.TotemPosition(moved))
		assert.Equal(t, opening[moved.Other()], game.TotemPosition(moved.Other()))
	})

	t.Run("Insert phase", func(t *testing.T) {
		// Given: the bot already moved a totem
		game := newGame(t)
		bot := newBot(2)
		require.NoError(t, bot.Play(game))
		totem := game.LastTotemPosition()

		// When: the bot plays again
		require.NoError(t, bot.Play(game))

		// Then: a pink token sits next to the moved totem and black is to play
		assert.Equal(t, oxono.PhaseMove, game.Phase())
		assert.Equal(t, entity.Black, game.ToPlay())
		assert.Equal(t, 33, game.CountEmptyTiles())
		assert.Equal(t, 7, game.TokenCount(entity.Pink, game.ToInsert()))

		adjacent := 0
		for _, pos := range game.AllPositions() {
			pawn, ok, err := game.PawnAt(pos)
			require.NoError(t, err)
			if ok && pawn.IsToken() && entity.IsAdjacent(pos, totem) {
				adjacent++
			}
		}
		assert.Equal(t, 1, adjacent)
	})

	t.Run("Exhausted symbol falls back to the other totem", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			// Given: pink has no X token left
			board, err := entity.NewBoard(6)
			require.NoError(t, err)
			pink := entity.NewPlayer(entity.Pink, 6)
			pink.Tokens[entity.X] = 0
			game := oxono.NewGame(board, pink, entity.NewPlayer(entity.Black, 6))

			// When: the bot moves
			require.NoError(t, newBot(seed).Play(game))

			// Then: it always picked the O totem
			assert.Equal(t, entity.O, game.ToInsert(), "seed %d", seed)
			assert.Equal(t, entity.Pos(2, 2), game.TotemPosition(entity.X))
		}
	})

	t.Run("No token at all", func(t *testing.T) {
		// Given: pink holds nothing
		board, err := entity.NewBoard(6)
		require.NoError(t, err)
		pink := entity.NewPlayer(entity.Pink, 6)
		pink.Tokens[entity.X] = 0
		pink.Tokens[entity.O] = 0
		game := oxono.NewGame(board, pink, entity.NewPlayer(entity.Black, 6))

		// When: the bot plays
		err = newBot(3).Play(game)

		// Then: it reports that no action exists
		require.ErrorIs(t, err, apperror.ErrActionExhaustion)
		assert.Equal(t, oxono.PhaseMove, game.Phase())
	})

	t.Run("Finished game", func(t *testing.T) {
		game := newGame(t)
		game.Surrender()

		err := newBot(4).Play(game)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBotService_FullGames(t *testing.T) {
	for _, size := range []int{4, 6} {
		for seed := int64(0); seed < 50; seed++ {
			// Given: two bots sharing a game
			game, err := oxono.New(size)
			require.NoError(t, err)
			bot := newBot(seed)

			// When: they play until the game ends
			actions := 0
			for !game.IsEnded() {
				require.NoError(t, bot.Play(game), "size %d seed %d after %d actions", size, seed, actions)
				actions++
				require.Less(t, actions, 2*size*size, "size %d seed %d never ended", size, seed)
			}

			// Then: it ended on a win, or on a draw once both inventories ran out
			if game.Won() {
				_, ok := game.Winner()
				assert.True(t, ok)
				assert.False(t, game.Drew())
				continue
			}

			assert.True(t, game.Drew(), "size %d seed %d", size, seed)
			assert.Equal(t, 2, game.CountEmptyTiles(), "size %d seed %d", size, seed)
			for _, color := range []entity.Color{entity.Pink, entity.Black} {
				for _, symbol := range entity.Symbols {
					assert.Zero(t, game.TokenCount(color, symbol))
				}
			}
			require.ErrorIs(t, bot.Play(game), apperror.ErrGameFinished)
		}
	}
}

func TestBotService_Deterministic(t *testing.T) {
	// Given: two games driven by bots with the same seed
	first, second := newGame(t), newGame(t)
	firstBot, secondBot := newBot(42), newBot(42)

	// When: both play the same number of actions
	for i := 0; i < 10 && !first.IsEnded(); i++ {
		require.NoError(t, firstBot.Play(first))
		require.NoError(t, secondBot.Play(second))
	}

	// Then: the boards are identical
	assert.Equal(t, first.Board(), second.Board())
}
