package store

import (
	"context"
	"fmt"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
)

type sessionLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionLogRepository constructs a [SessionLogRepository] on top of the
// given SQLite connection and ensures the focus_sessions table exists.
func NewSessionLogRepository(db *DB, logger *logger.Logger) (SessionLogRepository, error) {
	if _, err := db.Exec(createFocusSessionsTable); err != nil {
		logger.Err(err).Str("func", "NewSessionLogRepository").Msg("failed to create focus_sessions table")
		return nil, fmt.Errorf("failed to create focus_sessions table: %w", err)
	}

	return &sessionLogRepository{
		DB:     db,
		logger: logger,
	}, nil
}

func (s *sessionLogRepository) SaveSession(ctx context.Context, session models.FocusSession) (models.FocusSession, error) {
	log := logger.FromContext(ctx)

	res, err := s.DB.ExecContext(ctx, saveFocusSession, session.CompletedAt, session.PointsAwarded)
	if err != nil {
		log.Err(err).
			Str("func", "sessionLogRepository.SaveSession").
			Msg("failed to insert focus session")
		return models.FocusSession{}, fmt.Errorf("failed to save focus session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "sessionLogRepository.SaveSession").
			Msg("failed to read inserted session id")
		return models.FocusSession{}, fmt.Errorf("failed to read inserted session id: %w", err)
	}

	session.ID = id
	return session, nil
}

func (s *sessionLogRepository) GetRecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getRecentFocusSessions, limit)
	if err != nil {
		log.Err(err).
			Str("func", "sessionLogRepository.GetRecentSessions").
			Msg("failed to query focus sessions")
		return nil, fmt.Errorf("failed to query focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var session models.FocusSession
		if err := rows.Scan(&session.ID, &session.CompletedAt, &session.PointsAwarded); err != nil {
			log.Err(err).
				Str("func", "sessionLogRepository.GetRecentSessions").
				Msg("failed to scan focus session row")
			return nil, fmt.Errorf("failed to scan focus session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate focus session rows: %w", err)
	}

	return sessions, nil
}

func (s *sessionLogRepository) GetStats(ctx context.Context) (models.FocusStats, error) {
	log := logger.FromContext(ctx)

	var stats models.FocusStats
	row := s.DB.QueryRowContext(ctx, getFocusStats)
	if err := row.Scan(&stats.Sessions, &stats.PointsAwarded); err != nil {
		log.Err(err).
			Str("func", "sessionLogRepository.GetStats").
			Msg("failed to scan focus stats")
		return models.FocusStats{}, fmt.Errorf("failed to scan focus stats: %w", err)
	}

	return stats, nil
}
