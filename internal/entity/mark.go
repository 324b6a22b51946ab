package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// Mark is the symbol held by a cell. Empty denotes an unplayed cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// IsPlayable reports whether the mark can be placed by a player.
func (that Mark) IsPlayable() bool {
	return that == X || that == O
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark - parses "X" or "O". Comparison is exact.
func ParseMark(value string) (Mark, error) {
	switch value {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}
