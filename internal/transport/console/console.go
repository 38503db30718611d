package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/oxono"
	"github.com/rocketscienceinc/oxono/internal/usecase"
)

const help = `commands:
  MOVE <X|O> <row> <col>   slide a totem (short: X 2 0)
  INSERT <row> <col>       place a token next to the moved totem (short: 1 0)
  UNDO | REDO              rewind or replay your turn
  SURRENDER                give up
  HELP | QUIT
`

type gameDriver interface {
	Execute(ctx context.Context, line string) error
	PlayBot(ctx context.Context) error
	IsOver() bool
	Outcome() usecase.Outcome
	Snapshot() usecase.State
	Subscribe(observer oxono.Observer) (unsubscribe func())
}

// Console plays a game over a line-oriented reader and writer.
type Console struct {
	logger *slog.Logger
	driver gameDriver

	in  *bufio.Scanner
	out io.Writer

	dirty atomic.Bool
}

func New(logger *slog.Logger, driver gameDriver, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		driver: driver,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// OnChange only flags the board for redraw; the loop pulls the state itself.
func (that *Console) OnChange() {
	that.dirty.Store(true)
}

// Run reads commands until the game is decided, the input ends, QUIT is typed or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	unsubscribe := that.driver.Subscribe(that)
	defer unsubscribe()

	that.printf("OXONO: line up four tokens of one symbol or one colour. Type HELP for commands.\n")
	that.render()

loop:
	for !that.driver.IsOver() {
		if ctx.Err() != nil {
			return nil
		}

		if err := that.driver.PlayBot(ctx); err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}

		if that.dirty.Swap(false) {
			that.render()
		}

		if that.driver.IsOver() {
			break loop
		}

		that.prompt()

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			break loop
		}

		line := strings.TrimSpace(that.in.Text())
		switch strings.ToUpper(line) {
		case "":
			continue
		case "HELP":
			that.printf(help)
			continue
		case "QUIT", "EXIT":
			break loop
		}

		if err := that.driver.Execute(ctx, line); err != nil {
			that.logger.Debug("command failed", "line", line, "error", err)
			that.printf("%s\n", describe(err))
			continue
		}

		if that.dirty.Swap(false) {
			that.render()
		}
	}

	that.printf("%s\n", announce(that.driver.Outcome()))

	return nil
}

func (that *Console) render() {
	that.printf("%s", that.driver.Snapshot().Board)
}

func (that *Console) prompt() {
	state := that.driver.Snapshot()
	tokens := state.Tokens[state.ToPlay]

	that.printf("%s to play | X:%d O:%d | empty tiles: %d\n", state.ToPlay, tokens["X"], tokens["O"], state.EmptyTiles)

	if state.Phase == oxono.PhaseInsert.String() {
		that.printf("insert %s next to its totem > ", state.ToInsert)
		return
	}

	that.printf("move a totem > ")
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrUnknownCommand):
		return "unknown command, type HELP"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "that position is off the board"
	case errors.Is(err, apperror.ErrNoTokensLeft):
		return "you have no token of that symbol left"
	case errors.Is(err, apperror.ErrIllegalMove):
		return "the totem cannot go there"
	case errors.Is(err, apperror.ErrIllegalInsert):
		return "the token cannot go there"
	case errors.Is(err, apperror.ErrWrongPhase):
		return "not now: " + err.Error()
	case errors.Is(err, apperror.ErrEmptyHistory):
		return "nothing to undo or redo"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "wait for the bot"
	default:
		return err.Error()
	}
}

func announce(outcome usecase.Outcome) string {
	switch outcome.Status {
	case usecase.StatusWon:
		return outcome.Winner + " wins!"
	case usecase.StatusDraw:
		return "Nobody can win anymore: draw."
	case usecase.StatusSurrendered:
		return "Surrender: " + outcome.Winner + " wins."
	default:
		return "Game left unfinished."
	}
}
