package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// RenderBoard - plain-text grid, cells of the winning line are bracketed.
func RenderBoard(grid entity.Grid, winningLine []entity.Cell) string {
	var view strings.Builder

	for row := range entity.BoardSize {
		if row > 0 {
			view.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, entity.BoardSize)
		for column := range entity.BoardSize {
			symbol := grid[row][column].String()
			if symbol == "" {
				symbol = " "
			}

			if slices.Contains(winningLine, entity.Cell{Row: row, Column: column}) {
				cells = append(cells, "["+symbol+"]")
			} else {
				cells = append(cells, " "+symbol+" ")
			}
		}

		view.WriteString(strings.Join(cells, "|"))
		view.WriteString("\n")
	}

	return view.String()
}

// RenderStatistics - the statistics panel body.
func RenderStatistics(stats *entity.Statistics) string {
	streak := "none"
	if holder := stats.StreakHolder(); holder != entity.Empty {
		streak = fmt.Sprintf("%d (%s)", stats.StreakLength(), holder)
	}

	lines := []string{
		fmt.Sprintf("Total games:    %d", stats.TotalGames),
		fmt.Sprintf("X wins:         %d", stats.XWins),
		fmt.Sprintf("O wins:         %d", stats.OWins),
		fmt.Sprintf("Draws:          %d", stats.Draws),
		fmt.Sprintf("Win rate:       %.1f%%", stats.WinRate()),
		fmt.Sprintf("Current streak: %s", streak),
		fmt.Sprintf("Max win streak: %d", stats.MaxWinStreak),
	}

	return strings.Join(lines, "\n")
}
