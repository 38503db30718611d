package entity

import (
	"fmt"

	"github.com/rocketscienceinc/oxono/internal/apperror"
)

// Player holds a colour and the remaining token inventory per symbol.
type Player struct {
	Color  Color          `json:"color"`
	Tokens map[Symbol]int `json:"tokens"`
}

// NewPlayer gives each symbol (size²-4)/4 tokens. Both inventories together leave two cells free.
func NewPlayer(color Color, size int) *Player {
	count := (size*size - 4) / 4

	return &Player{
		Color: color,
		Tokens: map[Symbol]int{
			X: count,
			O: count,
		},
	}
}

func (that *Player) Remaining(symbol Symbol) int {
	return that.Tokens[symbol]
}

func (that *Player) HasTokens(symbol Symbol) bool {
	return that.Tokens[symbol] > 0
}

func (that *Player) Decrease(symbol Symbol) error {
	if that.Tokens[symbol] <= 0 {
		return fmt.Errorf("%w: %s has no %s left", apperror.ErrNoTokensLeft, that.Color, symbol)
	}

	that.Tokens[symbol]--

	return nil
}

func (that *Player) Increase(symbol Symbol) {
	that.Tokens[symbol]++
}

func (that *Player) String() string {
	return that.Color.String()
}
