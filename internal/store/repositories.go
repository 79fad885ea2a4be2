package store

import (
	"context"
	"fmt"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
)

// Repositories groups all server-side repositories into a single value that
// can be passed to the service layer.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories initialises the server storage layer: it connects to
// PostgreSQL, applies pending migrations, and wires up the repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
