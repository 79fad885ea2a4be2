package service

import (
	"context"
	"fmt"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
)

// awardAmount is the fixed award credited for one completed focus cycle.
const awardAmount int64 = 100

// pointsService is the concrete implementation of PointsService. Balances
// live in the users table; the increment itself happens atomically at the
// storage layer, so this service stays free of read-modify-write logic.
type pointsService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewPointsService constructs a PointsService on top of the given repository.
func NewPointsService(userRepository store.UserRepository, logger *logger.Logger) PointsService {
	return &pointsService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetPoints returns the current balance of the given user.
func (p *pointsService) GetPoints(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	points, err := p.userRepository.GetPoints(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("points lookup failed")
		return 0, fmt.Errorf("points lookup failed: %w", err)
	}

	return points, nil
}

// AwardPoints credits the fixed per-cycle award to the given user and
// returns the new balance.
func (p *pointsService) AwardPoints(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	newPoints, err := p.userRepository.AddPoints(ctx, userID, awardAmount)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("points award failed")
		return 0, fmt.Errorf("points award failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("new_points", newPoints).Msg("points awarded")
	return newPoints, nil
}
