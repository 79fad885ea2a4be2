package service

import (
	"context"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
)

// defaultRecentLimit bounds the stats screen's session list when the caller
// passes a non-positive limit.
const defaultRecentLimit = 10

type clientStatsService struct {
	sessionLog store.SessionLogRepository

	logger *logger.Logger
}

func NewClientStatsService(sessionLog store.SessionLogRepository, logger *logger.Logger) ClientStatsService {
	return &clientStatsService{sessionLog: sessionLog, logger: logger}
}

func (s *clientStatsService) RecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.sessionLog.GetRecentSessions(ctx, limit)
}

func (s *clientStatsService) Stats(ctx context.Context) (models.FocusStats, error) {
	return s.sessionLog.GetStats(ctx)
}
