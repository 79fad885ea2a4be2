package service

import (
	"context"
	"fmt"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
)

// Services groups all server-side services into a single value passed to the
// transport layer.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	PointsService  PointsService
	AppInfoService AppInfoService
}

// NewServices wires the service layer: it builds the avatar blob storage
// from configuration and constructs every service on top of the shared
// repositories.
func NewServices(ctx context.Context, repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	avatarStorage, err := NewAvatarStorage(ctx, cfg.Storage.Blob, logger)
	if err != nil {
		return nil, fmt.Errorf("avatar storage initialization failed: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service initialization failed: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(repos.UserRepository, avatarStorage, logger),
		PointsService:  NewPointsService(repos.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
