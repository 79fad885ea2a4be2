// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server writes well-known message strings (app.Msg*)
// into error response bodies; matching on them lets the client distinguish,
// say, a duplicate email from any other bad request.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrInvalidCredentials
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return store.ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return ErrServerFailure
	}

	return err
}

// extractBody extracts the server message from a transport error of the form
// "bad request: <body>". The body is the JSON error envelope written by the
// server, {"error": <message>}; a body that does not decode as that envelope
// is returned verbatim.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = strings.TrimSpace(msg[idx+2:])
	}

	var envelope models.ErrorResponse
	if jsonErr := json.Unmarshal([]byte(msg), &envelope); jsonErr == nil && envelope.Error != "" {
		return envelope.Error
	}
	return msg
}
