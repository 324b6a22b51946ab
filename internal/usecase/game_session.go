package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

var ErrInvalidPlayers = errors.New("players must hold X and O")

type scoreboardRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, stats *entity.Statistics) error
	GetByID(ctx context.Context, sessionID string) (*entity.Statistics, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type random interface {
	Intn(n int) int
}

// GameSession - controller of one local session: owns the board, the two players,
// whose turn it is and the session scoreboard. It is not safe for concurrent use.
type GameSession struct {
	logger *slog.Logger

	sessionID string
	board     *tictactoe.Board
	players   map[entity.Mark]entity.Player
	current   entity.Mark
	// starting is Empty when every new game picks its opener at random.
	starting entity.Mark

	scoreboard scoreboardRepo
	random     random

	// pending holds finished-game results not yet written to the scoreboard.
	pending []recordFunc
}

type recordFunc func(stats *entity.Statistics) error

// NewGameSession - starting is the mark that opens every game, or Empty for a random
// opener on each restart (the first game is then opened by X).
func NewGameSession(
	logger *slog.Logger,
	sessionID string,
	players [2]entity.Player,
	starting entity.Mark,
	scoreboard scoreboardRepo,
	random random,
) (*GameSession, error) {
	byMark := make(map[entity.Mark]entity.Player, len(players))
	for _, player := range players {
		if !player.Mark.IsPlayable() {
			return nil, fmt.Errorf("%w: %q has no mark", ErrInvalidPlayers, player.Name)
		}
		byMark[player.Mark] = player
	}

	if len(byMark) != len(players) {
		return nil, fmt.Errorf("%w: both players hold %s", ErrInvalidPlayers, players[0].Mark)
	}

	if starting != entity.Empty && !starting.IsPlayable() {
		return nil, fmt.Errorf("invalid starting player: %w", apperror.ErrInvalidMark)
	}

	current := entity.X
	if starting != entity.Empty {
		current = starting
	}

	return &GameSession{
		logger:     logger.With("component", "session", "session", sessionID),
		sessionID:  sessionID,
		board:      tictactoe.NewBoard(),
		players:    byMark,
		current:    current,
		starting:   starting,
		scoreboard: scoreboard,
		random:     random,
	}, nil
}

// Start - publishes an empty scoreboard for the session.
func (that *GameSession) Start(ctx context.Context) error {
	if err := that.scoreboard.CreateOrUpdate(ctx, that.sessionID, &entity.Statistics{}); err != nil {
		return fmt.Errorf("failed to create scoreboard: %w", err)
	}

	that.logger.Info("session started",
		"playerX", that.players[entity.X].Name,
		"playerO", that.players[entity.O].Name,
	)

	return nil
}

// MakeMove - plays the current player's mark at (row, column).
// On a rejected move nothing changes and the current player keeps the turn.
// When a finished game cannot be written to the scoreboard the error is returned with the
// outcome and the result stays pending: it is written by the next Statistics call or game end,
// even after Restart.
func (that *GameSession) MakeMove(ctx context.Context, row, column int) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeMove")

	player := that.CurrentPlayer()

	outcome, err := that.board.ApplyMove(row, column, player.Mark)
	if err != nil {
		log.Debug("move rejected", "row", row, "column", column, "mark", player.Mark.String(), "error", err)
		return outcome, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move applied", "row", row, "column", column, "mark", player.Mark.String(), "phase", outcome.Phase.String())

	switch outcome.Phase {
	case entity.Won:
		log.Info("game won", "winner", player.Name, "mark", player.Mark.String())
		err = that.recordResult(ctx, func(stats *entity.Statistics) error {
			return stats.RecordWin(player.Mark)
		})
	case entity.Drawn:
		log.Info("game drawn")
		err = that.recordResult(ctx, func(stats *entity.Statistics) error {
			stats.RecordDraw()
			return nil
		})
	default:
		that.current = that.current.Opponent()
	}

	if err != nil {
		return outcome, fmt.Errorf("failed to record result: %w", err)
	}

	return outcome, nil
}

// Restart - clears the board and picks who opens the next game.
func (that *GameSession) Restart() {
	that.board.Reset()

	that.current = that.starting
	if that.current == entity.Empty {
		if that.random.Intn(2) == 0 {
			that.current = entity.X
		} else {
			that.current = entity.O
		}
	}

	that.logger.Info("game restarted", "opener", that.current.String())
}

// Statistics - the session scoreboard, zero valued before the first finished game.
// Pending results are written first.
func (that *GameSession) Statistics(ctx context.Context) (*entity.Statistics, error) {
	if len(that.pending) > 0 {
		if err := that.flushPending(ctx); err != nil {
			return nil, err
		}
	}

	return that.loadStatistics(ctx)
}

// Close - removes the session scoreboard so nothing outlives the session.
func (that *GameSession) Close(ctx context.Context) error {
	err := that.scoreboard.DeleteByID(ctx, that.sessionID)
	if err != nil && !errors.Is(err, repository.ErrScoreboardNotFound) {
		return fmt.Errorf("failed to delete scoreboard: %w", err)
	}

	that.logger.Info("session closed")

	return nil
}

func (that *GameSession) SessionID() string {
	return that.sessionID
}

func (that *GameSession) CurrentPlayer() entity.Player {
	return that.players[that.current]
}

func (that *GameSession) Player(mark entity.Mark) entity.Player {
	return that.players[mark]
}

func (that *GameSession) Cell(row, column int) (entity.Mark, error) {
	mark, err := that.board.CurrentCell(row, column)
	if err != nil {
		return entity.Empty, fmt.Errorf("failed to read cell: %w", err)
	}

	return mark, nil
}

func (that *GameSession) Grid() entity.Grid {
	return that.board.Grid()
}

func (that *GameSession) Phase() entity.Phase {
	return that.board.Phase()
}

func (that *GameSession) WinningLine() []entity.Cell {
	return that.board.WinningLine()
}

func (that *GameSession) IsOnWinningLine(row, column int) bool {
	return that.board.IsOnWinningLine(row, column)
}

func (that *GameSession) recordResult(ctx context.Context, record recordFunc) error {
	that.pending = append(that.pending, record)

	return that.flushPending(ctx)
}

func (that *GameSession) flushPending(ctx context.Context) error {
	stats, err := that.loadStatistics(ctx)
	if err != nil {
		return err
	}

	for _, record := range that.pending {
		if err = record(stats); err != nil {
			return err
		}
	}

	if err = that.scoreboard.CreateOrUpdate(ctx, that.sessionID, stats); err != nil {
		that.logger.Warn("scoreboard write failed, results kept pending", "pending", len(that.pending), "error", err)
		return fmt.Errorf("failed to update scoreboard: %w", err)
	}

	that.pending = nil

	return nil
}

func (that *GameSession) loadStatistics(ctx context.Context) (*entity.Statistics, error) {
	stats, err := that.scoreboard.GetByID(ctx, that.sessionID)
	if errors.Is(err, repository.ErrScoreboardNotFound) {
		return &entity.Statistics{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return stats, nil
}
