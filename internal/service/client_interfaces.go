package service

import (
	"context"

	"github.com/ebelikov/lotus/models"
)

// ClientAuthService defines the client-side contract for account creation
// and session management. Implementations talk to the remote server through
// [adapter.ServerAdapter] and translate its transport errors into the
// business errors of this package.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not open a
	// session; call Login afterwards.
	Register(ctx context.Context, username, email, password string) (models.RegisteredUser, error)

	// Login authenticates against the server and stores the issued bearer
	// token in the adapter for subsequent requests.
	Login(ctx context.Context, email, password string) (models.SessionUser, error)

	// LoggedIn reports whether a session token is currently held.
	LoggedIn() bool

	// ServerVersion fetches the server's build version string.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientPointsService manages the points balance and the completion of
// focus cycles.
type ClientPointsService interface {
	// GetPoints fetches the current balance from the server.
	GetPoints(ctx context.Context) (int64, error)

	// CompleteFocusCycle reports a finished focus cycle. With an open
	// session it claims the server-side award and records the cycle in the
	// local log; without one it records the cycle with a zero award and
	// returns ErrNotLoggedIn alongside the saved session. The returned
	// int64 is the new server-side balance (zero when no award was made).
	CompleteFocusCycle(ctx context.Context) (models.FocusSession, int64, error)
}

// ClientProfileService manages the authenticated user's profile.
type ClientProfileService interface {
	// GetProfile fetches the full profile from the server.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile sends a partial update, optionally with a new avatar.
	// The server answers with just the updatable columns as persisted.
	// Returns store.ErrNoFieldsToUpdate when the server reports that the
	// update carried nothing.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error)
}

// ClientStatsService reads the local focus log for the stats screen.
type ClientStatsService interface {
	RecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error)
	Stats(ctx context.Context) (models.FocusStats, error)
}
