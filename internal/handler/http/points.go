package http

import (
	"errors"
	"net/http"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
)

// getPoints returns the current points balance of the authenticated user.
func (h *Handler) getPoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user ID is missing from the request context")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	points, err := h.services.PointsService.GetPoints(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Int64("id", userID).Msg("user not found")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during points lookup")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PointsResponse{Points: points}, http.StatusOK)
}

// awardPoints credits the authenticated user for one completed focus cycle.
// The award amount is fixed server-side; the request body is ignored, so a
// client cannot influence how many points a cycle is worth.
func (h *Handler) awardPoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user ID is missing from the request context")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	newPoints, err := h.services.PointsService.AwardPoints(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Int64("id", userID).Msg("user not found")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during points award")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", userID).Int64("points", newPoints).Msg("points awarded")

	utils.WriteJSON(w, models.AwardResponse{
		Message:   app.MsgPointsAwarded,
		NewPoints: newPoints,
	}, http.StatusOK)
}
