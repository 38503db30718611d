package entity

import "fmt"

type Color int

const (
	Pink Color = iota
	Black
	Blue
)

func (c Color) String() string {
	switch c {
	case Pink:
		return "PINK"
	case Black:
		return "BLACK"
	case Blue:
		return "BLUE"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor accepts the player colours only, BLUE belongs to the totems.
func ParseColor(s string) (Color, error) {
	switch s {
	case "PINK", "pink":
		return Pink, nil
	case "BLACK", "black":
		return Black, nil
	default:
		return 0, fmt.Errorf("unknown player color %q", s)
	}
}

type Symbol int

const (
	X Symbol = iota
	O
)

// Symbols lists both symbols in slot order.
var Symbols = [2]Symbol{X, O}

func (s Symbol) String() string {
	if s == O {
		return "O"
	}
	return "X"
}

// Other returns the opposite symbol.
func (s Symbol) Other() Symbol {
	if s == X {
		return O
	}
	return X
}

func ParseSymbol(s string) (Symbol, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	default:
		return 0, fmt.Errorf("unknown symbol %q", s)
	}
}

type PawnKind int

const (
	KindTotem PawnKind = iota
	KindToken
)

// Pawn is what occupies a cell: one of the two totems or a player token.
type Pawn struct {
	Kind   PawnKind `json:"kind"`
	Color  Color    `json:"color"`
	Symbol Symbol   `json:"symbol"`
}

func NewTotem(symbol Symbol) Pawn {
	return Pawn{Kind: KindTotem, Color: Blue, Symbol: symbol}
}

func NewToken(color Color, symbol Symbol) Pawn {
	return Pawn{Kind: KindToken, Color: color, Symbol: symbol}
}

func (that Pawn) IsTotem() bool {
	return that.Kind == KindTotem
}

func (that Pawn) IsToken() bool {
	return that.Kind == KindToken
}

// Matches reports whether the pawn shares either the symbol or the colour of other.
func (that Pawn) Matches(other Pawn) bool {
	return that.Symbol == other.Symbol || that.Color == other.Color
}

func (that Pawn) String() string {
	if that.IsTotem() {
		return "T" + that.Symbol.String()
	}
	return that.Color.String()[:1] + that.Symbol.String()
}
