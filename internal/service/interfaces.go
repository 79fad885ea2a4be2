package service

import (
	"context"

	"github.com/ebelikov/lotus/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error)
}

type PointsService interface {
	GetPoints(ctx context.Context, userID int64) (int64, error)
	AwardPoints(ctx context.Context, userID int64) (int64, error)
}

// AvatarStorage stores uploaded avatar images and returns a publicly
// reachable URL for each stored object.
type AvatarStorage interface {
	Upload(ctx context.Context, username string, upload models.AvatarUpload) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
