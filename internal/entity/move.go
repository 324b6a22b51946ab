package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// Move is one placement attempt. It is immutable once built.
type Move struct {
	cell Cell
	mark Mark
}

// NewMove - builds a move, rejecting coordinates off the grid and marks other than X or O.
func NewMove(row, column int, mark Mark) (Move, error) {
	cell := Cell{Row: row, Column: column}
	if !cell.InBounds() {
		return Move{}, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinate, row, column)
	}

	if !mark.IsPlayable() {
		return Move{}, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	return Move{cell: cell, mark: mark}, nil
}

func (that Move) Row() int {
	return that.cell.Row
}

func (that Move) Column() int {
	return that.cell.Column
}

func (that Move) Cell() Cell {
	return that.cell
}

func (that Move) Mark() Mark {
	return that.mark
}
