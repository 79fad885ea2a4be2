// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

// Package app contains shared application-layer constants used across the
// lotus server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API and
// lets the client map response bodies back to business errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not authenticate. The wording is identical for a
	// missing account and a wrong password on purpose.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUserNotFound is returned when an authenticated request references
	// an account that no longer exists.
	MsgUserNotFound = "user not found"

	// MsgNoFieldsToUpdate is returned (with HTTP 200) when a profile update
	// request carries no updatable fields at all; the profile is untouched.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgUserRegistered is the success message of the registration endpoint.
	MsgUserRegistered = "user registered"

	// MsgProfileUpdated is the success message of the profile update endpoint.
	MsgProfileUpdated = "profile updated"

	// MsgPointsAwarded is the success message of the points award endpoint.
	MsgPointsAwarded = "points awarded"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
