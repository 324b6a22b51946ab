package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type memScoreboard struct {
	mu     sync.RWMutex
	boards map[string]entity.Statistics
}

// NewMemoryScoreboardRepository - scoreboards kept in process memory only.
func NewMemoryScoreboardRepository() ScoreboardRepository {
	return &memScoreboard{
		boards: make(map[string]entity.Statistics),
	}
}

func (that *memScoreboard) CreateOrUpdate(_ context.Context, sessionID string, stats *entity.Statistics) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.boards[sessionID] = *stats

	return nil
}

func (that *memScoreboard) GetByID(_ context.Context, sessionID string) (*entity.Statistics, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	stats, ok := that.boards[sessionID]
	if !ok {
		return nil, ErrScoreboardNotFound
	}

	return &stats, nil
}

func (that *memScoreboard) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.boards[sessionID]; !ok {
		return ErrScoreboardNotFound
	}

	delete(that.boards, sessionID)

	return nil
}
