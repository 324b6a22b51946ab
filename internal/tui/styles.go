package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

var (
	colorX      = lipgloss.Color("#e74c3c")
	colorO      = lipgloss.Color("#3498db")
	colorWin    = lipgloss.Color("#2ecc71")
	colorHoverX = lipgloss.Color("#ff6b6b")
	colorHoverO = lipgloss.Color("#6bb9ff")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ecf0f1")).
			MarginBottom(1)

	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bdc3c7"))
	statusStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWin).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWin).
			Padding(0, 2)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Height(1).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#555555"))

	cursorCellStyle = cellStyle.BorderForeground(lipgloss.Color("#f1c40f"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f1c40f")).
			Padding(1, 2)
)

func markColor(mark entity.Mark) lipgloss.Color {
	if mark == entity.O {
		return colorO
	}
	return colorX
}

// hoverColor - lighter tint of the mark's colour for the cell preview.
func hoverColor(mark entity.Mark) lipgloss.Color {
	if mark == entity.O {
		return colorHoverO
	}
	return colorHoverX
}
