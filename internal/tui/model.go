package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const pulseInterval = 150 * time.Millisecond

type gameSession interface {
	MakeMove(ctx context.Context, row, column int) (entity.Outcome, error)
	Restart()
	Statistics(ctx context.Context) (*entity.Statistics, error)
	CurrentPlayer() entity.Player
	Grid() entity.Grid
	Phase() entity.Phase
	IsOnWinningLine(row, column int) bool
}

type pulseMsg struct{}

// Model - game screen driving one session. Every session call happens inside Update.
type Model struct {
	ctx     context.Context
	session gameSession

	KeyMap KeyMap
	help   help.Model

	cursor    entity.Cell
	stats     *entity.Statistics
	showStats bool
	status    string

	pulsing bool
	pulseOn bool

	width, height int
}

func New(ctx context.Context, session gameSession) *Model {
	model := &Model{
		ctx:     ctx,
		session: session,
		KeyMap:  Keys,
		help:    help.New(),
		cursor:  entity.Cell{Row: 1, Column: 1},
		stats:   &entity.Statistics{},
	}
	model.refreshStatistics()

	return model
}

func (that *Model) Init() tea.Cmd {
	return nil
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return that, that.handleKey(msg)

	case pulseMsg:
		if that.session.Phase() != entity.Won {
			that.pulsing = false
			that.pulseOn = false
			return that, nil
		}
		that.pulseOn = !that.pulseOn
		return that, pulse()

	case tea.WindowSizeMsg:
		that.width = msg.Width
		that.height = msg.Height
		that.help.Width = msg.Width
	}

	return that, nil
}

func (that *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, that.KeyMap.Quit):
		return tea.Quit

	case key.Matches(msg, that.KeyMap.Stats):
		that.showStats = !that.showStats
		if that.showStats {
			that.refreshStatistics()
		}

	case that.showStats:
		// the statistics panel swallows every other key

	case key.Matches(msg, that.KeyMap.Up):
		that.cursor.Row = (that.cursor.Row - 1 + entity.BoardSize) % entity.BoardSize

	case key.Matches(msg, that.KeyMap.Down):
		that.cursor.Row = (that.cursor.Row + 1) % entity.BoardSize

	case key.Matches(msg, that.KeyMap.Left):
		that.cursor.Column = (that.cursor.Column - 1 + entity.BoardSize) % entity.BoardSize

	case key.Matches(msg, that.KeyMap.Right):
		that.cursor.Column = (that.cursor.Column + 1) % entity.BoardSize

	case key.Matches(msg, that.KeyMap.Play):
		return that.play()

	case key.Matches(msg, that.KeyMap.New):
		that.session.Restart()
		that.status = ""
	}

	return nil
}

func (that *Model) play() tea.Cmd {
	outcome, err := that.session.MakeMove(that.ctx, that.cursor.Row, that.cursor.Column)

	that.status = ""
	if err != nil {
		that.status = describeError(err)
	}

	if !outcome.Phase.IsFinished() {
		return nil
	}

	that.refreshStatistics()

	if outcome.Phase != entity.Won || that.pulsing {
		return nil
	}

	that.pulsing = true
	that.pulseOn = true

	return pulse()
}

func (that *Model) refreshStatistics() {
	stats, err := that.session.Statistics(that.ctx)
	if err != nil {
		that.status = describeError(err)
		return
	}

	that.stats = stats
}

func pulse() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseMsg{}
	})
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken"
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over, press n for a new one"
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "That cell is off the board"
	default:
		return err.Error()
	}
}

func (that *Model) View() string {
	sections := []string{
		titleStyle.Render("Tic-Tac-Toe"),
		that.renderScore(),
		that.renderBoard(),
		statusStyle.Render(that.renderStatus()),
	}

	if that.status != "" {
		sections = append(sections, errorStyle.Render(that.status))
	}

	if that.showStats {
		sections = append(sections, panelStyle.Render("Statistics\n\n"+RenderStatistics(that.stats)))
	}

	sections = append(sections, that.help.View(that.KeyMap))

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if that.width == 0 || that.height == 0 {
		return view
	}

	return lipgloss.Place(that.width, that.height, lipgloss.Center, lipgloss.Center, view)
}

func (that *Model) renderScore() string {
	return scoreStyle.Render(fmt.Sprintf("X: %d  Ties: %d  O: %d", that.stats.XWins, that.stats.Draws, that.stats.OWins))
}

func (that *Model) renderStatus() string {
	switch that.session.Phase() {
	case entity.Won:
		winner := that.session.CurrentPlayer()
		return bannerStyle.Render(fmt.Sprintf("%s wins!\nX %d - O %d - Draws %d",
			winner.Name, that.stats.XWins, that.stats.OWins, that.stats.Draws))
	case entity.Drawn:
		return bannerStyle.Render("It's a draw!")
	default:
		player := that.session.CurrentPlayer()
		return lipgloss.NewStyle().Foreground(markColor(player.Mark)).
			Render(fmt.Sprintf("%s's Turn (%s)", player.Name, player.Mark))
	}
}

func (that *Model) renderBoard() string {
	grid := that.session.Grid()
	rows := make([]string, 0, entity.BoardSize)

	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for column := range entity.BoardSize {
			cells = append(cells, that.renderCell(grid, row, column))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that *Model) renderCell(grid entity.Grid, row, column int) string {
	onCursor := that.cursor == entity.Cell{Row: row, Column: column}

	style := cellStyle
	if onCursor {
		style = cursorCellStyle
	}

	mark := grid[row][column]

	switch {
	case mark == entity.Empty && onCursor && that.session.Phase() == entity.InProgress:
		preview := that.session.CurrentPlayer().Mark
		return style.Foreground(hoverColor(preview)).Render(preview.String())
	case mark == entity.Empty:
		return style.Render(" ")
	case that.session.IsOnWinningLine(row, column):
		win := style.Bold(true).Foreground(colorWin)
		if that.pulseOn {
			win = win.Reverse(true)
		}
		return win.Render(mark.String())
	default:
		return style.Bold(true).Foreground(markColor(mark)).Render(mark.String())
	}
}
