package service

import (
	"context"
	"testing"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPointsService(repo store.UserRepository) *pointsService {
	return &pointsService{
		userRepository: repo,
		logger:         logger.Nop(),
	}
}

func TestPointsService_GetPoints_Success(t *testing.T) {
	repo := &mockUserRepository{
		getPointsFn: func(ctx context.Context, userID int64) (int64, error) {
			return 700, nil
		},
	}
	svc := newTestPointsService(repo)

	points, err := svc.GetPoints(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(700), points)
}

func TestPointsService_GetPoints_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		getPointsFn: func(ctx context.Context, userID int64) (int64, error) {
			return 0, store.ErrUserNotFound
		},
	}
	svc := newTestPointsService(repo)

	_, err := svc.GetPoints(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPointsService_AwardPoints_FixedAmount(t *testing.T) {
	var gotAmount int64
	repo := &mockUserRepository{
		addPointsFn: func(ctx context.Context, userID int64, amount int64) (int64, error) {
			gotAmount = amount
			return 500 + amount, nil
		},
	}
	svc := newTestPointsService(repo)

	newPoints, err := svc.AwardPoints(context.Background(), 1)
	require.NoError(t, err)

	// The award size is fixed server-side; clients cannot influence it.
	assert.Equal(t, awardAmount, gotAmount)
	assert.Equal(t, int64(600), newPoints)
}

func TestPointsService_AwardPoints_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		addPointsFn: func(ctx context.Context, userID int64, amount int64) (int64, error) {
			return 0, errRepository
		},
	}
	svc := newTestPointsService(repo)

	_, err := svc.AwardPoints(context.Background(), 1)
	assert.ErrorIs(t, err, errRepository)
}
