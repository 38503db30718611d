package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/oxono"
	"github.com/rocketscienceinc/oxono/internal/service"
)

const (
	StatusOngoing     = "ongoing"
	StatusWon         = "won"
	StatusDraw        = "draw"
	StatusSurrendered = "surrendered"
)

type botService interface {
	Play(game service.Game) error
}

// GameManager serializes driver access to one game and lets the bot play its side.
type GameManager struct {
	logger *slog.Logger

	mu       sync.Mutex
	game     *oxono.Game
	bot      botService
	botColor entity.Color
}

// NewGameManager wires a game with an optional bot playing botColor. A nil bot means two human players.
func NewGameManager(logger *slog.Logger, game *oxono.Game, bot botService, botColor entity.Color) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		game:     game,
		bot:      bot,
		botColor: botColor,
	}
}

// Execute parses and applies one driver line.
func (that *GameManager) Execute(ctx context.Context, line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}

	return that.Apply(ctx, cmd)
}

func (that *GameManager) Apply(ctx context.Context, cmd Command) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("command", cmd.String(), "player", that.game.ToPlay().String())

	if cmd.Kind != CommandSurrender && that.isBotTurn() {
		return fmt.Errorf("%w: %s is played by the bot", apperror.ErrNotYourTurn, that.botColor)
	}

	var err error
	switch cmd.Kind {
	case CommandMove:
		err = that.game.Move(cmd.Symbol, cmd.Position)
	case CommandInsert:
		err = that.game.InsertNext(cmd.Position)
	case CommandUndo:
		err = that.game.Undo()
	case CommandRedo:
		err = that.game.Redo()
	case CommandSurrender:
		that.game.Surrender()
	}

	if err != nil {
		log.InfoContext(ctx, "command rejected", "error", err)
		return fmt.Errorf("failed to apply %s: %w", cmd.Kind, err)
	}

	log.DebugContext(ctx, "command applied", "phase", that.game.Phase().String())

	return nil
}

func (that *GameManager) IsBotTurn() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.isBotTurn()
}

func (that *GameManager) isBotTurn() bool {
	return that.bot != nil && !that.isOver() && that.game.ToPlay() == that.botColor
}

func (that *GameManager) isOver() bool {
	return that.game.IsEnded() || that.game.Drew()
}

// PlayBot lets the bot finish its turn. It is a no-op when it is not the bot's turn.
func (that *GameManager) PlayBot(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for that.isBotTurn() {
		if err := that.bot.Play(that.game); err != nil {
			return fmt.Errorf("bot failed to play: %w", err)
		}

		that.logger.DebugContext(ctx, "bot played",
			"phase", that.game.Phase().String(),
			"totem", that.game.LastTotemPosition().String(),
		)
	}

	return nil
}

// Subscribe registers a change observer on the managed game.
func (that *GameManager) Subscribe(observer oxono.Observer) (unsubscribe func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Subscribe(observer)
}

// Outcome describes how the game stands.
type Outcome struct {
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}

func (that *GameManager) Outcome() Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.outcome()
}

func (that *GameManager) IsOver() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.isOver()
}

func (that *GameManager) outcome() Outcome {
	if winner, ok := that.game.Winner(); ok {
		return Outcome{Status: StatusWon, Winner: winner.String()}
	}

	if that.game.Drew() {
		return Outcome{Status: StatusDraw}
	}

	if that.game.IsEnded() {
		// whoever was to play gave up
		winner := entity.Pink
		if that.game.ToPlay() == entity.Pink {
			winner = entity.Black
		}

		return Outcome{Status: StatusSurrendered, Winner: winner.String()}
	}

	return Outcome{Status: StatusOngoing}
}

// State is a read-only snapshot of the query surface.
type State struct {
	Size       int                       `json:"size"`
	Cells      [][]string                `json:"cells"`
	Phase      string                    `json:"phase"`
	ToPlay     string                    `json:"to_play"`
	ToInsert   string                    `json:"to_insert,omitempty"`
	Tokens     map[string]map[string]int `json:"tokens"`
	EmptyTiles int                       `json:"empty_tiles"`
	CanUndo    bool                      `json:"can_undo"`
	CanRedo    bool                      `json:"can_redo"`
	Outcome    Outcome                   `json:"outcome"`
	Board      string                    `json:"-"`
}

func (that *GameManager) Snapshot() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := that.game
	board := game.Board()

	state := State{
		Size:       game.Size(),
		Cells:      make([][]string, game.Size()),
		Phase:      game.Phase().String(),
		ToPlay:     game.ToPlay().String(),
		Tokens:     make(map[string]map[string]int, 2),
		EmptyTiles: game.CountEmptyTiles(),
		CanUndo:    game.CanUndo(),
		CanRedo:    game.CanRedo(),
		Outcome:    that.outcome(),
		Board:      board.String(),
	}

	if game.Phase() == oxono.PhaseInsert {
		state.ToInsert = game.ToInsert().String()
	}

	for row := range state.Cells {
		state.Cells[row] = make([]string, game.Size())
		for col := range state.Cells[row] {
			if pawn, ok := board.At(entity.Pos(row, col)); ok {
				state.Cells[row][col] = pawn.String()
			}
		}
	}

	for _, color := range []entity.Color{entity.Pink, entity.Black} {
		counts := make(map[string]int, len(entity.Symbols))
		for _, symbol := range entity.Symbols {
			counts[symbol.String()] = game.TokenCount(color, symbol)
		}
		state.Tokens[color.String()] = counts
	}

	return state
}
