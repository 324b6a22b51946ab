package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// WinCombos - the eight winning lines in evaluation order:
// rows top to bottom, columns left to right, then the ↘ and ↗ diagonals.
var WinCombos = [8][3]entity.Cell{
	{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}},
	{{Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0}},
	{{Row: 0, Column: 1}, {Row: 1, Column: 1}, {Row: 2, Column: 1}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 1}, {Row: 2, Column: 0}},
}

const maxMoves = entity.BoardSize * entity.BoardSize

// Board is the authoritative state of one game. It performs no locking;
// callers sharing it between goroutines must serialize access.
type Board struct {
	cells       entity.Grid
	moveCount   int
	phase       entity.Phase
	winningLine []entity.Cell
}

func NewBoard() *Board {
	return &Board{}
}

// ApplyMove - places mark at (row, column) and evaluates the resulting phase.
// A rejected move leaves the board untouched.
func (that *Board) ApplyMove(row, column int, mark entity.Mark) (entity.Outcome, error) {
	if that.phase.IsFinished() {
		return entity.Outcome{}, fmt.Errorf("%w: game %s", apperror.ErrGameFinished, that.phase)
	}

	move, err := entity.NewMove(row, column, mark)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("invalid move: %w", err)
	}

	if that.cells[row][column] != entity.Empty {
		return entity.Outcome{}, fmt.Errorf("%w: row %d, column %d holds %s",
			apperror.ErrCellOccupied, row, column, that.cells[row][column])
	}

	that.place(move)
	that.updateGameStatus(move.Mark())

	return that.outcome(), nil
}

// Reset - returns the board to its initial state.
func (that *Board) Reset() {
	that.cells = entity.Grid{}
	that.moveCount = 0
	that.phase = entity.InProgress
	that.winningLine = nil
}

// CurrentCell - returns the mark at (row, column).
func (that *Board) CurrentCell(row, column int) (entity.Mark, error) {
	cell := entity.Cell{Row: row, Column: column}
	if !cell.InBounds() {
		return entity.Empty, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinate, row, column)
	}

	return that.cells[row][column], nil
}

func (that *Board) Phase() entity.Phase {
	return that.phase
}

func (that *Board) MoveCount() int {
	return that.moveCount
}

// WinningLine - copy of the line that won the game, nil unless the phase is Won.
func (that *Board) WinningLine() []entity.Cell {
	return slices.Clone(that.winningLine)
}

// Grid - copy of every cell.
func (that *Board) Grid() entity.Grid {
	return that.cells
}

func (that *Board) IsOnWinningLine(row, column int) bool {
	return slices.Contains(that.winningLine, entity.Cell{Row: row, Column: column})
}

func (that *Board) place(move entity.Move) {
	that.cells[move.Row()][move.Column()] = move.Mark()
	that.moveCount++
}

// updateGameStatus - checks the game status after mark was played.
func (that *Board) updateGameStatus(mark entity.Mark) {
	if line, ok := findWinningLine(that.cells, mark); ok {
		that.phase = entity.Won
		that.winningLine = line
		return
	}

	that.winningLine = nil

	if that.moveCount == maxMoves {
		that.phase = entity.Drawn
		return
	}

	that.phase = entity.InProgress
}

func (that *Board) outcome() entity.Outcome {
	return entity.Outcome{
		Phase:       that.phase,
		WinningLine: that.WinningLine(),
	}
}

// findWinningLine - first line, in WinCombos order, fully held by mark.
func findWinningLine(cells entity.Grid, mark entity.Mark) ([]entity.Cell, bool) {
	for _, combo := range WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if cells[a.Row][a.Column] == mark && cells[b.Row][b.Column] == mark && cells[c.Row][c.Column] == mark {
			return combo[:], true
		}
	}

	return nil, false
}
