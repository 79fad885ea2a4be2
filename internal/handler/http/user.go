package http

import (
	"errors"
	"net/http"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/utils"
)

// getUser returns the profile of the authenticated user. The identity comes
// exclusively from the session token resolved by the auth middleware.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user ID is missing from the request context")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	foundUser, err := h.services.ProfileService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// the account behind a still-valid token has been removed
			log.Err(err).Int64("id", userID).Msg("user not found")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during user lookup")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}
