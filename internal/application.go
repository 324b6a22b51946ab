package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tui"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one interactive session until the players quit or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreboard, closeStorage, err := newScoreboardRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close scoreboard storage", "error", err)
		}
	}()

	starting, err := startingMark(conf.StartingPlayer)
	if err != nil {
		return err
	}

	players := [2]entity.Player{
		{Name: conf.Players.X, Mark: entity.X},
		{Name: conf.Players.O, Mark: entity.O},
	}

	sessionID := pkg.GenerateSessionID()
	session, err := usecase.NewGameSession(logger, sessionID, players, starting, scoreboard, pkg.NewRandom())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err = session.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	log.Info("Session ready", "session", sessionID, "storage", conf.Scoreboard.Storage)

	defer func() {
		if closeErr := session.Close(context.WithoutCancel(ctx)); closeErr != nil {
			log.Error("could not close session", "error", closeErr)
		}
	}()

	program := tea.NewProgram(tui.New(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}

func newScoreboardRepository(ctx context.Context, conf *config.Config) (repository.ScoreboardRepository, func() error, error) {
	if conf.Scoreboard.Storage != config.StorageRedis {
		return repository.NewMemoryScoreboardRepository(), func() error { return nil }, nil
	}

	client, err := connectRedis(ctx, conf)
	if err != nil {
		return nil, nil, err
	}

	return repository.NewScoreboardRepository(client, conf.Scoreboard.TTL), client.Close, nil
}

func connectRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	if conf.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return client, nil
}

func startingMark(startingPlayer string) (entity.Mark, error) {
	if startingPlayer == config.StartRandom {
		return entity.Empty, nil
	}

	mark, err := entity.ParseMark(startingPlayer)
	if err != nil {
		return entity.Empty, fmt.Errorf("invalid starting player: %w", err)
	}

	return mark, nil
}
