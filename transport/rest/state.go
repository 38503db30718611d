package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/oxono/internal/usecase"
)

type stateSource interface {
	Snapshot() usecase.State
}

type stateHandler struct {
	logger *slog.Logger
	source stateSource
}

// ServeHTTP answers GET with the current snapshot; `?format=text` returns the board grid.
func (that *stateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	state := that.source.Snapshot()

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(state.Board)); err != nil {
			that.logger.Error("failed to write board", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		that.logger.Error("failed to encode state", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
