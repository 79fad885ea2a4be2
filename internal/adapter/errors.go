// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package adapter

import "errors"

// Sentinel transport errors, one per HTTP status class the server is known
// to produce. mapHTTPError wraps the response body around them, so callers
// match with [errors.Is] and can still read the server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
