package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookups, profile updates and points accrual
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, Points, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. Uniqueness of the email is
// enforced solely by the database constraint; there is no racy pre-check.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := scanUser(row, &user); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// GetUserByID retrieves the user record with the given primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile update to the given user. Only the
// fields present (non-nil) in update are written; absent fields keep their
// stored values. The RETURNING clause covers exactly the updatable columns,
// so the caller gets back the persisted profile slice and nothing more.
//
// The UPDATE statement is built with squirrel, one SET clause per provided
// field, so the write touches exactly what the caller sent.
//
// Error handling:
//   - update carries no fields → [ErrNoFieldsToUpdate].
//   - no row matched userID → [ErrUserNotFound].
//   - query build failure → wrapped [ErrBuildingSQLQuery].
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.UpdatedProfile, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.UpdatedProfile{}, ErrNoFieldsToUpdate
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING avatar_url, first_name, last_name")

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.UpdatedProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.UpdatedProfile
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: row is nil")
		return models.UpdatedProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&updated.AvatarURL, &updated.FirstName, &updated.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UpdatedProfile{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: scanning error")
		return models.UpdatedProfile{}, err
	}

	return updated, nil
}

// GetPoints returns the current points balance of the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
func (r *userRepository) GetPoints(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var points int64
	row := r.db.QueryRowContext(ctx, getPoints, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetPoints").Msg("error: row is nil")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&points); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetPoints").Msg("error: scanning error")
		return 0, err
	}

	return points, nil
}

// AddPoints atomically increments the points balance by amount and returns
// the new balance. The increment happens inside a single UPDATE statement,
// so concurrent awards serialize at the row level and no award is lost.
//
// The statement is executed exactly once. The increment is not idempotent:
// re-running it after an ambiguous connection fault could award the same
// cycle twice, so even failures the [ErrorClassificator] deems transient
// only get annotated in the log, never retried.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
func (r *userRepository) AddPoints(ctx context.Context, userID int64, amount int64) (int64, error) {
	log := logger.FromContext(ctx)

	var newPoints int64
	row := r.db.QueryRowContext(ctx, addPoints, amount, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.AddPoints").Msg("error: row is nil")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&newPoints); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		transient := r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable
		log.Err(err).
			Str("func", "*userRepository.AddPoints").
			Int64("user_id", userID).
			Bool("transient", transient).
			Msg("error incrementing points")
		return 0, err
	}

	return newPoints, nil
}

// scanUser scans a full users row into dst in column order.
func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(
		&dst.UserID,
		&dst.Email,
		&dst.Username,
		&dst.PasswordHash,
		&dst.Points,
		&dst.FirstName,
		&dst.LastName,
		&dst.AvatarURL,
		&dst.CreatedAt,
	)
}
