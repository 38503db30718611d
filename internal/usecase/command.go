package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/oxono/internal/apperror"
	"github.com/rocketscienceinc/oxono/internal/entity"
)

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandInsert
	CommandUndo
	CommandRedo
	CommandSurrender
)

func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "MOVE"
	case CommandInsert:
		return "INSERT"
	case CommandUndo:
		return "UNDO"
	case CommandRedo:
		return "REDO"
	case CommandSurrender:
		return "SURRENDER"
	default:
		return fmt.Sprintf("Command(%d)", int(k))
	}
}

// Command is one driver instruction. Symbol is only set for MOVE, Position for MOVE and INSERT.
type Command struct {
	Kind     CommandKind
	Symbol   entity.Symbol
	Position entity.Position
}

// ParseCommand reads one of:
//
//	MOVE <X|O> <row> <col>
//	INSERT <row> <col>
//	UNDO | REDO | SURRENDER
//
// The short forms `<X|O> <row> <col>` and `<row> <col>` stand for MOVE and INSERT.
// Keywords are case-insensitive.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", apperror.ErrUnknownCommand)
	}

	switch {
	case len(fields) == 3 && (fields[0] == "X" || fields[0] == "O"):
		fields = append([]string{"MOVE"}, fields...)
	case len(fields) == 2:
		if _, err := strconv.Atoi(fields[0]); err == nil {
			fields = append([]string{"INSERT"}, fields...)
		}
	}

	keyword, args := fields[0], fields[1:]
	switch keyword {
	case "MOVE":
		if len(args) != 3 {
			return Command{}, fmt.Errorf("%w: usage MOVE <X|O> <row> <col>", apperror.ErrUnknownCommand)
		}

		symbol, err := entity.ParseSymbol(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", apperror.ErrUnknownCommand, err)
		}

		pos, err := parsePosition(args[1], args[2])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: CommandMove, Symbol: symbol, Position: pos}, nil
	case "INSERT":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage INSERT <row> <col>", apperror.ErrUnknownCommand)
		}

		pos, err := parsePosition(args[0], args[1])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: CommandInsert, Position: pos}, nil
	case "UNDO", "REDO", "SURRENDER":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no argument", apperror.ErrUnknownCommand, keyword)
		}

		return Command{Kind: map[string]CommandKind{
			"UNDO":      CommandUndo,
			"REDO":      CommandRedo,
			"SURRENDER": CommandSurrender,
		}[keyword]}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, keyword)
	}
}

func parsePosition(row, col string) (entity.Position, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: invalid row %q", apperror.ErrUnknownCommand, row)
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: invalid column %q", apperror.ErrUnknownCommand, col)
	}

	return entity.Pos(r, c), nil
}

func (that Command) String() string {
	switch that.Kind {
	case CommandMove:
		return fmt.Sprintf("MOVE %s %d %d", that.Symbol, that.Position.Row, that.Position.Col)
	case CommandInsert:
		return fmt.Sprintf("INSERT %d %d", that.Position.Row, that.Position.Col)
	default:
		return that.Kind.String()
	}
}
