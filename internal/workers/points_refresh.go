package workers

import (
	"context"
	"time"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
)

// defaultRefreshInterval is used when the configured interval is zero or
// negative.
const defaultRefreshInterval = time.Minute

// PointsRefreshWorker periodically re-fetches the points balance from the
// server and hands it to the onUpdate callback, keeping the UI's balance
// display fresh even when points are earned from another device.
type PointsRefreshWorker struct {
	authService   service.ClientAuthService
	pointsService service.ClientPointsService

	interval time.Duration
	onUpdate func(points int64)

	ctx    context.Context
	logger *logger.Logger
}

// NewPointsRefreshWorker builds the worker. onUpdate is called from the
// worker goroutine on every successful fetch; it must be safe for that.
func NewPointsRefreshWorker(
	ctx context.Context,
	authService service.ClientAuthService,
	pointsService service.ClientPointsService,
	interval time.Duration,
	onUpdate func(points int64),
	logger *logger.Logger,
) *PointsRefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &PointsRefreshWorker{
		authService:   authService,
		pointsService: pointsService,
		interval:      interval,
		onUpdate:      onUpdate,
		ctx:           ctx,
		logger:        logger,
	}
}

// Run implements [Worker]. It spawns the refresh goroutine and returns
// immediately; the goroutine exits when the worker's context is cancelled.
func (w *PointsRefreshWorker) Run() {
	go w.loop()
}

func (w *PointsRefreshWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Debug().Msg("points refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *PointsRefreshWorker) refresh() {
	// nothing to refresh before login
	if !w.authService.LoggedIn() {
		return
	}

	points, err := w.pointsService.GetPoints(w.ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "refresh").Msg("points refresh failed")
		return
	}

	w.onUpdate(points)
}
