// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package store

const (
	createFocusSessionsTable = `
		CREATE TABLE IF NOT EXISTS focus_sessions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			completed_at   TIMESTAMP NOT NULL,
			points_awarded INTEGER   NOT NULL DEFAULT 0
		);`

	saveFocusSession = `
		INSERT INTO focus_sessions (
			completed_at,
			points_awarded
		) VALUES ($1, $2);`

	getRecentFocusSessions = `
		SELECT id, completed_at, points_awarded
		FROM focus_sessions
		ORDER BY completed_at DESC, id DESC
		LIMIT $1;`

	getFocusStats = `
		SELECT COUNT(*), COALESCE(SUM(points_awarded), 0)
		FROM focus_sessions;`
)
