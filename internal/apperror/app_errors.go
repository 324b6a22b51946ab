package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidMark       = errors.New("invalid mark")
)
