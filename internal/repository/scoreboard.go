package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

var ErrScoreboardNotFound = errors.New("scoreboard not found")

const scoreboardKeyPrefix = "scoreboard:"

type ScoreboardRepository interface {
	CreateOrUpdate(ctx context.Context, sessionID string, stats *entity.Statistics) error
	GetByID(ctx context.Context, sessionID string) (*entity.Statistics, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbScoreboard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreboardRepository - scoreboards stored as JSON in Redis, each key expiring after ttl.
func NewScoreboardRepository(client *redis.Client, ttl time.Duration) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScoreboard) CreateOrUpdate(ctx context.Context, sessionID string, stats *entity.Statistics) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal scoreboard: %w", err)
	}

	err = that.client.Set(ctx, scoreboardKey(sessionID), statsJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set scoreboard: %w", err)
	}

	return nil
}

func (that *dbScoreboard) GetByID(ctx context.Context, sessionID string) (*entity.Statistics, error) {
	response, err := that.client.Get(ctx, scoreboardKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrScoreboardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard by id: %w", err)
	}

	var stats entity.Statistics
	if err = json.Unmarshal([]byte(response), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoreboard: %w", err)
	}

	return &stats, nil
}

func (that *dbScoreboard) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, scoreboardKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete scoreboard by id: %w", err)
	}

	if deleted == 0 {
		return ErrScoreboardNotFound
	}

	return nil
}

func scoreboardKey(sessionID string) string {
	return scoreboardKeyPrefix + sessionID
}
