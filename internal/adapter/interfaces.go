// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

// Package adapter provides transport-layer abstractions for communicating with
// the lotus server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ebelikov/lotus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the lotus
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from the given credentials. Registration
	// does not open a session: the caller is expected to Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error)

	// Login authenticates with the server. On success it stores the bearer
	// token from the Authorization response header via SetToken and returns
	// the session payload of the logged-in user.
	Login(ctx context.Context, req models.LoginRequest) (models.SessionUser, error)

	// GetProfile fetches the authenticated user's full profile. Requires a
	// valid bearer token.
	GetProfile(ctx context.Context) (models.User, error)

	// GetPoints fetches the authenticated user's current points balance.
	// Requires a valid bearer token.
	GetPoints(ctx context.Context) (int64, error)

	// AwardPoints reports one completed focus cycle to the server and returns
	// the new points balance. The award amount is decided server-side.
	// Requires a valid bearer token.
	AwardPoints(ctx context.Context) (int64, error)

	// UpdateProfile sends a partial profile update as a multipart form. Only
	// non-nil update fields are included; avatar may be nil. The returned
	// response carries the server's outcome message and, when any field was
	// actually changed, the refreshed user record. Requires a valid bearer
	// token.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdateUserResponse, error)

	// GetServerVersion fetches the server's build version string. Requires a
	// valid bearer token.
	GetServerVersion(ctx context.Context) (string, error)
}
