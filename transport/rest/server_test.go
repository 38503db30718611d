package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/oxono"
	"github.com/rocketscienceinc/oxono/internal/usecase"
)

func newRouter(t *testing.T) (http.Handler, *usecase.GameManager) {
	t.Helper()

	game, err := oxono.New(6)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, game, nil, entity.Black)

	return NewRouter(logger, manager, nil), manager
}

func TestPing(t *testing.T) {
	router, _ := newRouter(t)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestState(t *testing.T) {
	t.Run("JSON snapshot", func(t *testing.T) {
		// Given: pink has played a whole turn
		router, manager := newRouter(t)
		require.NoError(t, manager.Execute(context.Background(), "MOVE X 2 0"))
		require.NoError(t, manager.Execute(context.Background(), "INSERT 1 0"))

		// When: the state is requested
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/state", nil))

		// Then: it reflects the turn
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var state usecase.State
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &state))
		assert.Equal(t, "BLACK", state.ToPlay)
		assert.Equal(t, "PX", state.Cells[1][0])
		assert.Equal(t, 33, state.EmptyTiles)
		assert.Equal(t, 7, state.Tokens["PINK"]["X"])
		assert.Equal(t, usecase.StatusOngoing, state.Outcome.Status)
	})

	t.Run("Text board", func(t *testing.T) {
		router, manager := newRouter(t)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/state?format=text", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, manager.Snapshot().Board, recorder.Body.String())
	})

	t.Run("Read only", func(t *testing.T) {
		router, _ := newRouter(t)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/state", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}

func TestStart(t *testing.T) {
	// Given: a server on a free port
	ctx, cancel := context.WithCancel(context.Background())
	router, _ := newRouter(t)

	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, "0", router)
	}()

	// When: its context is canceled
	cancel()

	// Then: it stops without error
	require.NoError(t, <-done)
}
