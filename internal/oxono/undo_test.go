package oxono

import (
	"testing"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playFullRound plays one pink turn and one black turn on a fresh 6x6 game.
func playFullRound(t *testing.T, game *Game) {
	t.Helper()

	require.NoError(t, game.Move(entity.X, entity.Pos(2, 0)))
	require.NoError(t, game.Insert(entity.Pos(2, 0), entity.Pos(1, 0)))
	require.NoError(t, game.Move(entity.O, entity.Pos(3, 5)))
	require.NoError(t, game.Insert(entity.Pos(3, 5), entity.Pos(4, 5)))
}

func TestGame_Undo(t *testing.T) {
	t.Run("Move then undo", func(t *testing.T) {
		// Given: pink moved the X totem
		game := newGame(t)
		require.NoError(t, game.Move(entity.X, entity.Pos(2, 0)))

		// When: the move is undone
		require.NoError(t, game.Undo())

		// Then: the totem is back and nothing is left to undo
		assert.Equal(t, entity.Pos(2, 2), game.TotemPosition(entity.X))
		assert.Equal(t, PhaseMove, game.Phase())
		assert.Equal(t, entity.Pink, game.ToPlay())
		assert.False(t, game.CanUndo())
		assert.True(t, game.CanRedo())

		// When: it is redone
		require.NoError(t, game.Redo())

		// Then: the insertion is pending again
		assert.Equal(t, entity.Pos(2, 0), game.TotemPosition(entity.X))
		assert.Equal(t, PhaseInsert, game.Phase())
		assert.Equal(t, entity.X, game.ToInsert())
	})

	t.Run("Move, insert, undo, redo", func(t *testing.T) {
		// Given: pink played a whole first turn
		game := newGame(t)
		require.NoError(t, game.Move(entity.X, entity.Pos(2, 0)))
		require.NoError(t, game.Insert(entity.Pos(2, 0), entity.Pos(1, 0)))
		after := game.Board()

		// When: the turn is undone
		require.NoError(t, game.Undo())

		// Then: pink is back to its pending insertion with the token returned
		assert.Equal(t, PhaseInsert, game.Phase())
		assert.Equal(t, entity.Pink, game.ToPlay())
		assert.Equal(t, entity.X, game.ToInsert())
		assert.Equal(t, 8, game.TokenCount(entity.Pink, entity.X))
		_, ok, _ := game.PawnAt(entity.Pos(1, 0))
		assert.False(t, ok)

		// When: it is redone
		require.NoError(t, game.Redo())

		// Then: the state right after the insertion is restored
		assert.Equal(t, after, game.Board())
		assert.Equal(t, 7, game.TokenCount(entity.Pink, entity.X))
		assert.Equal(t, entity.Black, game.ToPlay())
		assert.Equal(t, PhaseMove, game.Phase())
	})

	t.Run("Undo skips back over the opponent turn", func(t *testing.T) {
		// Given: pink and black each played a turn
		game := newGame(t)
		playFullRound(t, game)
		after := game.Board()

		// When: pink undoes
		require.NoError(t, game.Undo())

		// Then: black's turn and pink's insertion are gone, pink's move remains
		assert.Equal(t, PhaseInsert, game.Phase())
		assert.Equal(t, entity.Pink, game.ToPlay())
		assert.Equal(t, entity.X, game.ToInsert())
		assert.Equal(t, entity.Pos(2, 0), game.TotemPosition(entity.X))
		assert.Equal(t, entity.Pos(3, 3), game.TotemPosition(entity.O))
		assert.Equal(t, entity.Pos(2, 0), game.LastTotemPosition())
		assert.Equal(t, entity.Pos(2, 0), game.LastTotemPositionPink())
		assert.Equal(t, 8, game.TokenCount(entity.Pink, entity.X))
		assert.Equal(t, 8, game.TokenCount(entity.Black, entity.O))
		assert.Equal(t, 34, game.CountEmptyTiles())

		// When: pink redoes
		require.NoError(t, game.Redo())

		// Then: both turns are replayed with their inventories
		assert.Equal(t, after, game.Board())
		assert.Equal(t, PhaseMove, game.Phase())
		assert.Equal(t, entity.Pink, game.ToPlay())
		assert.Equal(t, 7, game.TokenCount(entity.Pink, entity.X))
		assert.Equal(t, 7, game.TokenCount(entity.Black, entity.O))
	})

	t.Run("Undo down to the start", func(t *testing.T) {
		// Given: a full round undone once
		game := newGame(t)
		playFullRound(t, game)
		require.NoError(t, game.Undo())

		// When: pink undoes the pending move too
		require.NoError(t, game.Undo())

		// Then: the board is back to the opening
		assert.Equal(t, PhaseMove, game.Phase())
		assert.Equal(t, entity.Pos(2, 2), game.TotemPosition(entity.X))
		assert.False(t, game.CanUndo())
		require.ErrorIs(t, game.Undo(), apperror.ErrEmptyHistory)

		// When: everything is redone
		require.NoError(t, game.Redo())
		require.NoError(t, game.Redo())

		// Then: the round is back in place
		assert.Equal(t, PhaseMove, game.Phase())
		assert.Equal(t, entity.Pink, game.ToPlay())
		assert.Equal(t, entity.Pos(3, 5), game.TotemPosition(entity.O))
		assert.False(t, game.CanRedo())
	})

	t.Run("New action drops the redo history", func(t *testing.T) {
		// Given: a round undone
		game := newGame(t)
		playFullRound(t, game)
		require.NoError(t, game.Undo())

		// When: pink inserts elsewhere
		require.NoError(t, game.Insert(entity.Pos(2, 0), entity.Pos(3, 0)))

		// Then: there is nothing left to redo and black is to play
		assert.False(t, game.CanRedo())
		require.ErrorIs(t, game.Redo(), apperror.ErrEmptyHistory)
		assert.Equal(t, entity.Black, game.ToPlay())
		assert.Equal(t, 7, game.TokenCount(entity.Pink, entity.X))
		assert.Equal(t, 8, game.TokenCount(entity.Black, entity.O))
	})

	t.Run("Empty history", func(t *testing.T) {
		game := newGame(t)

		require.ErrorIs(t, game.Undo(), apperror.ErrEmptyHistory)
		require.ErrorIs(t, game.Redo(), apperror.ErrEmptyHistory)
	})
}
