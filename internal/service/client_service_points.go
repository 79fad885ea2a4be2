package service

import (
	"context"
	"time"

	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
)

type clientPointsService struct {
	serverAdapter adapter.ServerAdapter
	sessionLog    store.SessionLogRepository

	logger *logger.Logger
}

func NewClientPointsService(serverAdapter adapter.ServerAdapter, sessionLog store.SessionLogRepository, logger *logger.Logger) ClientPointsService {
	return &clientPointsService{
		serverAdapter: serverAdapter,
		sessionLog:    sessionLog,
		logger:        logger,
	}
}

func (s *clientPointsService) GetPoints(ctx context.Context) (int64, error) {
	points, err := s.serverAdapter.GetPoints(ctx)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	return points, nil
}

// CompleteFocusCycle claims the server award for a finished cycle and
// records the cycle in the local log. The local record is written even when
// no award could be claimed, so the stats screen never loses a session.
func (s *clientPointsService) CompleteFocusCycle(ctx context.Context) (models.FocusSession, int64, error) {
	var (
		awarded   int64
		newPoints int64
		awardErr  error
	)

	if s.serverAdapter.Token() == "" {
		awardErr = ErrNotLoggedIn
	} else {
		newPoints, awardErr = s.serverAdapter.AwardPoints(ctx)
		if awardErr != nil {
			s.logger.Err(awardErr).Str("func", "CompleteFocusCycle").Msg("server award failed")
			awardErr = mapAdapterError(awardErr)
		} else {
			awarded = cycleAward
		}
	}

	session, err := s.sessionLog.SaveSession(ctx, models.FocusSession{
		CompletedAt:   time.Now(),
		PointsAwarded: awarded,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "CompleteFocusCycle").Msg("saving session to local log failed")
		return models.FocusSession{}, 0, err
	}

	if awardErr != nil {
		return session, 0, awardErr
	}

	s.logger.Info().Int64("session_id", session.ID).Int64("points", newPoints).Msg("focus cycle completed")
	return session, newPoints, nil
}

// cycleAward mirrors the server-side award per completed cycle and is used
// only for the local log entry; the authoritative balance always comes from
// the server response.
const cycleAward int64 = 100
