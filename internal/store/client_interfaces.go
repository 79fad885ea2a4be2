package store

import (
	"context"

	"github.com/ebelikov/lotus/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionLogRepository is the local, client-side log of completed focus
// cycles. It backs the stats screen of the terminal client.
type SessionLogRepository interface {
	SaveSession(ctx context.Context, session models.FocusSession) (models.FocusSession, error)
	GetRecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error)
	GetStats(ctx context.Context) (models.FocusStats, error)
}
