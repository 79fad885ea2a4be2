// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"errors"
	"net/http"

	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
)

// Sentinel errors used by the authentication middleware when resolving the
// session credential. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCredential is returned by the auth middleware when the
	// incoming request carries neither an "Authorization" header nor a
	// session cookie.
	ErrNoSessionCredential = errors.New("no session credential provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// writeError renders a failure as a JSON body of the form {"error": msg}.
// All handler error paths go through it so clients can always decode the
// same shape regardless of the status code.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
