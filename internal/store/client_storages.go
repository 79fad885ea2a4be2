package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [SessionLogRepository]; additional repositories can be added
// here as the feature set grows.
type ClientStorages struct {
	// SessionLog is the SQLite-backed log of completed focus cycles
	// recorded locally on the client device.
	SessionLog SessionLogRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Resolves the session log path, falling back to "lotus.db" in the
//     user's home directory when cfg.SessionLogPath is empty.
//  2. Opens an SQLite connection to that path, creating the database file
//     if it does not yet exist.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionLogRepository], which ensures its schema on creation.
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientTimer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	path, err := resolveSessionLogPath(cfg.SessionLogPath)
	if err != nil {
		return nil, err
	}

	db, err := NewConnectSQLite(context.Background(), path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessionLog, err := NewSessionLogRepository(db, logger)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		SessionLog: sessionLog,
	}, nil
}

func resolveSessionLogPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory for session log: %w", err)
	}

	return filepath.Join(home, "lotus.db"), nil
}
