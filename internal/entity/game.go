package entity

// BoardSize is the number of rows and columns of the grid.
const BoardSize = 3

// Cell addresses one square of the grid.
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// InBounds reports whether the cell lies on the grid.
func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Column >= 0 && that.Column < BoardSize
}

// Grid is a snapshot of every cell, indexed [row][column].
type Grid [BoardSize][BoardSize]Mark

// Phase is the terminal-state classification of a game.
type Phase uint8

const (
	InProgress Phase = iota
	Won
	Drawn
)

func (that Phase) String() string {
	switch that {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

func (that Phase) IsFinished() bool {
	return that == Won || that == Drawn
}

// Outcome is the state transition produced by applying a move.
// WinningLine is nil unless Phase is Won.
type Outcome struct {
	Phase       Phase
	WinningLine []Cell
}
