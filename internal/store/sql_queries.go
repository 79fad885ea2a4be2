// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package store

const (
	createUser = `INSERT INTO users (email, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, username, password_hash, points, first_name, last_name, avatar_url, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, points, first_name, last_name, avatar_url, created_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT user_id, email, username, password_hash, points, first_name, last_name, avatar_url, created_at
    FROM users
    WHERE user_id = $1;`

	getPoints = `SELECT points
    FROM users
    WHERE user_id = $1;`

	// addPoints increments atomically in a single statement so that two
	// concurrent awards can never read-modify-write over each other.
	addPoints = `UPDATE users
    SET points = points + $1
    WHERE user_id = $2
    RETURNING points;`
)
