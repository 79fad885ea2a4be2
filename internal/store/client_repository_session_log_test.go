package store

import (
	"context"
	"testing"
	"time"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
)

func newTestSessionLog(t *testing.T) SessionLogRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewSessionLogRepository(db, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create session log repository: %v", err)
	}
	return repo
}

func TestSessionLog_SaveAssignsID(t *testing.T) {
	repo := newTestSessionLog(t)
	ctx := context.Background()

	saved, err := repo.SaveSession(ctx, models.FocusSession{
		CompletedAt:   time.Now().UTC(),
		PointsAwarded: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected a non-zero local id")
	}
}

func TestSessionLog_RecentSessionsNewestFirst(t *testing.T) {
	repo := newTestSessionLog(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.SaveSession(ctx, models.FocusSession{
			CompletedAt:   base.Add(time.Duration(i) * 30 * time.Minute),
			PointsAwarded: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	sessions, err := repo.GetRecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if !sessions[0].CompletedAt.After(sessions[1].CompletedAt) {
		t.Errorf("expected newest first, got %v then %v", sessions[0].CompletedAt, sessions[1].CompletedAt)
	}
}

func TestSessionLog_StatsAggregates(t *testing.T) {
	repo := newTestSessionLog(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.SaveSession(ctx, models.FocusSession{
			CompletedAt:   time.Now().UTC(),
			PointsAwarded: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := repo.GetStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Sessions != 4 {
		t.Errorf("expected 4 sessions, got %d", stats.Sessions)
	}
	if stats.PointsAwarded != 400 {
		t.Errorf("expected 400 points, got %d", stats.PointsAwarded)
	}
}

func TestSessionLog_StatsEmptyLog(t *testing.T) {
	repo := newTestSessionLog(t)

	stats, err := repo.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Sessions != 0 || stats.PointsAwarded != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
