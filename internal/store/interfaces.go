package store

import (
	"context"

	"github.com/ebelikov/lotus/models"
)

// UserRepository is the persistence contract for user accounts, profiles
// and points balances.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.UpdatedProfile, error)
	GetPoints(ctx context.Context, userID int64) (int64, error)
	AddPoints(ctx context.Context, userID int64, amount int64) (int64, error)
}

// ErrorClassificator classifies a failed database operation as transient or
// permanent. The store never retries on its own; the classification feeds
// log annotation so operators can tell connection blips from real faults.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
