package websocket

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/oxono/internal/usecase"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

type stateSource interface {
	Snapshot() usecase.State
}

// Server streams the game state to read-only watchers. It is an oxono.Observer: every change
// marks each watcher dirty and the watcher's own goroutine pulls a fresh snapshot.
type Server struct {
	logger   *slog.Logger
	source   stateSource
	upgrader websocket.Upgrader

	mu       sync.Mutex
	watchers map[string]*watcher
}

type watcher struct {
	id    string
	conn  *websocket.Conn
	dirty chan struct{}
}

func New(logger *slog.Logger, source stateSource) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		watchers: make(map[string]*watcher),
	}
}

// OnChange never blocks: a watcher that already has a pending refresh is skipped.
func (that *Server) OnChange() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, w := range that.watchers {
		select {
		case w.dirty <- struct{}{}:
		default:
		}
	}
}

func (that *Server) Watchers() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.watchers)
}

// ServeHTTP upgrades the request and streams states until the watcher leaves or ctx of the request ends.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	w := &watcher{
		id:    uuid.NewString(),
		conn:  conn,
		dirty: make(chan struct{}, 1),
	}

	log := that.logger.With("watcher", w.id)
	log.Info("watcher connected")

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	that.add(w)
	defer func() {
		that.remove(w.id)
		_ = conn.Close()
		log.Info("watcher disconnected")
	}()

	go func() {
		defer cancel()
		that.readLoop(w)
	}()

	if err = that.writeLoop(ctx, w); err != nil {
		log.Debug("write loop stopped", "error", err)
	}
}

func (that *Server) add(w *watcher) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.watchers[w.id] = w
}

func (that *Server) remove(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.watchers, id)
}

// readLoop only drains control frames; watchers have nothing to say.
func (that *Server) readLoop(w *watcher) {
	_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error {
		return w.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (that *Server) writeLoop(ctx context.Context, w *watcher) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	hello, err := newMessage(ActionConnected, ConnectedPayload{WatcherID: w.id})
	if err != nil {
		return err
	}

	if err = that.send(w, hello); err != nil {
		return err
	}

	if err = that.sendState(w); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return nil
		case <-w.dirty:
			if err = that.sendState(w); err != nil {
				return err
			}
		case <-ticker.C:
			if err = w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("failed to ping: %w", err)
			}
		}
	}
}

func (that *Server) sendState(w *watcher) error {
	message, err := newMessage(ActionState, that.source.Snapshot())
	if err != nil {
		return err
	}

	return that.send(w, message)
}

func (that *Server) send(w *watcher, message Message) error {
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := w.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write %s: %w", message.Action, err)
	}

	return nil
}
