package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type turn struct {
	row, column int
	mark        entity.Mark
}

func playTurns(t *testing.T, board *Board, turns []turn) entity.Outcome {
	t.Helper()

	var outcome entity.Outcome
	for i, tt := range turns {
		var err error
		outcome, err = board.ApplyMove(tt.row, tt.column, tt.mark)
		require.NoError(t, err, "turn %d (%+v)", i, tt)
	}

	return outcome
}

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and the game is in progress
	assert.Equal(t, entity.Grid{}, board.Grid())
	assert.Equal(t, 0, board.MoveCount())
	assert.Equal(t, entity.InProgress, board.Phase())
	assert.Nil(t, board.WinningLine())
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Move sets the cell and keeps the game going", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the centre
		outcome, err := board.ApplyMove(1, 1, entity.X)
		require.NoError(t, err)

		// Then: the cell holds X and the game continues
		assert.Equal(t, entity.Outcome{Phase: entity.InProgress}, outcome)
		mark, err := board.CurrentCell(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.X, mark)
		assert.Equal(t, 1, board.MoveCount())
	})

	t.Run("Row win", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X completes the top row on the fifth move
		outcome := playTurns(t, board, []turn{
			{0, 0, entity.X},
			{1, 1, entity.O},
			{0, 1, entity.X},
			{1, 0, entity.O},
			{0, 2, entity.X},
		})

		// Then: the game is won on the top row
		expectedLine := []entity.Cell{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}}
		assert.Equal(t, entity.Outcome{Phase: entity.Won, WinningLine: expectedLine}, outcome)
		assert.Equal(t, entity.Won, board.Phase())
		assert.Equal(t, expectedLine, board.WinningLine())
		assert.True(t, board.IsOnWinningLine(0, 2))
		assert.False(t, board.IsOnWinningLine(1, 1))
	})

	t.Run("Anti-diagonal win for O", func(t *testing.T) {
		board := NewBoard()

		outcome := playTurns(t, board, []turn{
			{0, 0, entity.X},
			{0, 2, entity.O},
			{0, 1, entity.X},
			{1, 1, entity.O},
			{2, 2, entity.X},
			{2, 0, entity.O},
		})

		assert.Equal(t, entity.Won, outcome.Phase)
		assert.Equal(t, []entity.Cell{{Row: 0, Column: 2}, {Row: 1, Column: 1}, {Row: 2, Column: 0}}, outcome.WinningLine)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a board filled towards X,O,X / O,X,O / O,X,O
		board := NewBoard()

		// When: the ninth move is played
		outcome := playTurns(t, board, []turn{
			{0, 0, entity.X},
			{0, 1, entity.O},
			{0, 2, entity.X},
			{1, 0, entity.O},
			{1, 1, entity.X},
			{1, 2, entity.O},
			{2, 1, entity.X},
			{2, 0, entity.O},
			{2, 2, entity.O},
		})

		// Then: the game is drawn with no winning line
		assert.Equal(t, entity.Outcome{Phase: entity.Drawn}, outcome)
		assert.Equal(t, 9, board.MoveCount())
		assert.Nil(t, board.WinningLine())
	})

	t.Run("Win on the ninth move is not a draw", func(t *testing.T) {
		board := NewBoard()

		outcome := playTurns(t, board, []turn{
			{0, 2, entity.X},
			{0, 0, entity.O},
			{1, 0, entity.X},
			{0, 1, entity.O},
			{2, 1, entity.X},
			{1, 1, entity.O},
			{1, 2, entity.X},
			{2, 0, entity.O},
			{2, 2, entity.X},
		})

		assert.Equal(t, entity.Won, outcome.Phase)
		assert.Equal(t, []entity.Cell{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}}, outcome.WinningLine)
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a move targets row 5
		_, err := board.ApplyMove(5, 0, entity.X)

		// Then: ErrInvalidCoordinate is returned and the grid is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.Equal(t, entity.Grid{}, board.Grid())
		assert.Equal(t, 0, board.MoveCount())
	})

	t.Run("Error on negative coordinate", func(t *testing.T) {
		board := NewBoard()

		_, err := board.ApplyMove(0, -1, entity.O)

		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		board := NewBoard()

		_, err := board.ApplyMove(0, 0, entity.Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, 0, board.MoveCount())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds (0,0)
		board := NewBoard()
		_, err := board.ApplyMove(0, 0, entity.X)
		require.NoError(t, err)
		before := board.Grid()

		// When: O plays the same cell
		_, err = board.ApplyMove(0, 0, entity.O)

		// Then: ErrCellOccupied is returned and the cell keeps X
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Grid())
		assert.Equal(t, 1, board.MoveCount())
		mark, err := board.CurrentCell(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.X, mark)
	})

	t.Run("Move after win", func(t *testing.T) {
		// Given: X has already won
		board := NewBoard()
		playTurns(t, board, []turn{
			{0, 0, entity.X},
			{1, 1, entity.O},
			{0, 1, entity.X},
			{1, 0, entity.O},
			{0, 2, entity.X},
		})
		before := board.Grid()

		// When: O tries to play after the game is over
		_, err := board.ApplyMove(2, 2, entity.O)

		// Then: ErrGameFinished is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, board.Grid())
		assert.Equal(t, entity.Won, board.Phase())
		assert.Equal(t, 5, board.MoveCount())
	})

	t.Run("Move after draw", func(t *testing.T) {
		board := NewBoard()
		board.cells = entity.Grid{
			{entity.X, entity.O, entity.X},
			{entity.O, entity.X, entity.O},
			{entity.O, entity.X, entity.O},
		}
		board.moveCount = 9
		board.phase = entity.Drawn

		_, err := board.ApplyMove(0, 0, entity.X)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBoard_FirstLineWins(t *testing.T) {
	t.Run("Row beats column", func(t *testing.T) {
		// Given: an artificial grid where (0,0) completes row 0 and column 0
		board := NewBoard()
		board.cells = entity.Grid{
			{entity.Empty, entity.X, entity.X},
			{entity.X, entity.O, entity.O},
			{entity.X, entity.O, entity.Empty},
		}
		board.moveCount = 7

		// When: X plays (0,0)
		outcome, err := board.ApplyMove(0, 0, entity.X)
		require.NoError(t, err)

		// Then: row 0 is reported since rows come first
		assert.Equal(t, []entity.Cell{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}}, outcome.WinningLine)
	})

	t.Run("Row 2 beats column 0 and the anti-diagonal", func(t *testing.T) {
		for range 3 {
			board := NewBoard()
			board.cells = entity.Grid{
				{entity.X, entity.O, entity.X},
				{entity.X, entity.X, entity.O},
				{entity.Empty, entity.X, entity.X},
			}
			board.moveCount = 8

			outcome, err := board.ApplyMove(2, 0, entity.X)
			require.NoError(t, err)

			assert.Equal(t, []entity.Cell{{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}}, outcome.WinningLine)
		}
	})

	t.Run("Lone diagonal", func(t *testing.T) {
		board := NewBoard()
		board.cells = entity.Grid{
			{entity.O, entity.Empty, entity.X},
			{entity.Empty, entity.O, entity.X},
			{entity.X, entity.Empty, entity.Empty},
		}
		board.moveCount = 5

		outcome, err := board.ApplyMove(2, 2, entity.O)
		require.NoError(t, err)

		// only the ↘ diagonal is complete for O
		assert.Equal(t, []entity.Cell{{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2}}, outcome.WinningLine)
	})

	t.Run("Column beats diagonal", func(t *testing.T) {
		board := NewBoard()
		board.cells = entity.Grid{
			{entity.X, entity.Empty, entity.X},
			{entity.O, entity.X, entity.X},
			{entity.X, entity.O, entity.Empty},
		}
		board.moveCount = 7

		outcome, err := board.ApplyMove(2, 2, entity.X)
		require.NoError(t, err)

		// column 2 and the ↘ diagonal are both complete
		assert.Equal(t, []entity.Cell{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}}, outcome.WinningLine)
	})
}

func TestBoard_Reset(t *testing.T) {
	t.Run("Reset after win", func(t *testing.T) {
		// Given: a won game
		board := NewBoard()
		playTurns(t, board, []turn{
			{0, 0, entity.X},
			{1, 1, entity.O},
			{0, 1, entity.X},
			{1, 0, entity.O},
			{0, 2, entity.X},
		})

		// When: the board is reset twice
		board.Reset()
		board.Reset()

		// Then: it equals a new board
		assert.Equal(t, NewBoard(), board)
	})

	t.Run("Reset after draw", func(t *testing.T) {
		// Given: a drawn game
		board := NewBoard()
		outcome := playTurns(t, board, []turn{
			{0, 0, entity.X}, {0, 1, entity.O}, {0, 2, entity.X},
			{1, 1, entity.X}, {1, 0, entity.O}, {1, 2, entity.O},
			{2, 1, entity.X}, {2, 0, entity.O}, {2, 2, entity.O},
		})
		require.Equal(t, entity.Drawn, outcome.Phase)

		// When: the board is reset
		board.Reset()

		// Then: it equals a new board and accepts moves again
		assert.Equal(t, NewBoard(), board)
		_, err := board.ApplyMove(0, 0, entity.O)
		require.NoError(t, err)
	})

	t.Run("Reset mid-game allows the same cell again", func(t *testing.T) {
		board := NewBoard()
		playTurns(t, board, []turn{{2, 2, entity.O}})

		board.Reset()

		_, err := board.ApplyMove(2, 2, entity.X)
		require.NoError(t, err)
	})
}

func TestBoard_CurrentCell(t *testing.T) {
	board := NewBoard()

	mark, err := board.CurrentCell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.Empty, mark)

	_, err = board.CurrentCell(3, 1)
	require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
}

func TestBoard_WinningLineIsACopy(t *testing.T) {
	board := NewBoard()
	playTurns(t, board, []turn{
		{0, 0, entity.X},
		{1, 1, entity.O},
		{0, 1, entity.X},
		{1, 0, entity.O},
		{0, 2, entity.X},
	})

	line := board.WinningLine()
	line[0] = entity.Cell{Row: 2, Column: 2}

	assert.Equal(t, entity.Cell{Row: 0, Column: 0}, board.WinningLine()[0])
	assert.Equal(t, entity.Cell{Row: 0, Column: 0}, WinCombos[0][0])
}

// TestBoard_AllReachableGames walks every game reachable by alternating moves
// from an empty board and checks the phase invariants at each position.
func TestBoard_AllReachableGames(t *testing.T) {
	var games, wins, draws int

	var walk func(board *Board, mark entity.Mark)
	walk = func(board *Board, mark entity.Mark) {
		for row := range entity.BoardSize {
			for column := range entity.BoardSize {
				if board.cells[row][column] != entity.Empty {
					continue
				}

				child := *board
				outcome, err := child.ApplyMove(row, column, mark)
				require.NoError(t, err)

				assertConsistent(t, &child, outcome)

				switch outcome.Phase {
				case entity.Won:
					games++
					wins++
					_, err = child.ApplyMove(0, 0, mark.Opponent())
					require.ErrorIs(t, err, apperror.ErrGameFinished)
				case entity.Drawn:
					games++
					draws++
				default:
					walk(&child, mark.Opponent())
				}
			}
		}
	}

	walk(NewBoard(), entity.X)

	// well-known totals for 3x3 tic-tac-toe
	assert.Equal(t, 255168, games)
	assert.Equal(t, 46080, draws)
	assert.Equal(t, 209088, wins)
}

func assertConsistent(t *testing.T, board *Board, outcome entity.Outcome) {
	t.Helper()

	filled := 0
	for _, row := range board.cells {
		for _, mark := range row {
			if mark != entity.Empty {
				filled++
			}
		}
	}
	require.Equal(t, filled, board.moveCount)

	hasLine := false
	for _, combo := range WinCombos {
		a := board.cells[combo[0].Row][combo[0].Column]
		if a != entity.Empty && a == board.cells[combo[1].Row][combo[1].Column] && a == board.cells[combo[2].Row][combo[2].Column] {
			hasLine = true
			break
		}
	}

	require.Equal(t, hasLine, outcome.Phase == entity.Won)
	require.Equal(t, !hasLine && filled == 9, outcome.Phase == entity.Drawn)
	if outcome.Phase == entity.Won {
		require.Len(t, outcome.WinningLine, 3)
	} else {
		require.Nil(t, outcome.WinningLine)
	}
}
