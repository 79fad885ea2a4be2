package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" so that login failures are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingPasswordHash signals a corrupt account record: the stored
	// hash is empty and no password can ever verify against it. This is an
	// internal fault, never a client error.
	ErrMissingPasswordHash = errors.New("account record has no password hash")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAvatarStorageNotConfigured is returned when an avatar upload is
	// attempted but no blob storage bucket is configured.
	ErrAvatarStorageNotConfigured = errors.New("avatar storage is not configured")

	// ErrServerFailure is the client-side business error for any 5xx
	// response: the request was fine, the server was not.
	ErrServerFailure = errors.New("server failed to process the request")

	// ErrNotLoggedIn is returned by client services that need an open
	// session when no bearer token has been stored yet.
	ErrNotLoggedIn = errors.New("not logged in")
)
