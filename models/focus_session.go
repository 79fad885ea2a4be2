package models

import "time"

// FocusSession is a completed focus cycle recorded by the client in its
// local log. It never leaves the client machine; the server only sees
// the points award call the completion triggered.
type FocusSession struct {
	// ID is the local, client-assigned row identifier.
	ID int64 `json:"id"`

	// CompletedAt is when the countdown reached zero.
	CompletedAt time.Time `json:"completed_at"`

	// PointsAwarded is the award credited for this cycle, or zero when
	// the cycle finished without an active session.
	PointsAwarded int64 `json:"points_awarded"`
}

// FocusStats aggregates the local focus log for the stats screen.
type FocusStats struct {
	// Sessions is the number of completed focus cycles on record.
	Sessions int64 `json:"sessions"`

	// PointsAwarded is the sum of awards across those cycles.
	PointsAwarded int64 `json:"points_awarded"`
}
