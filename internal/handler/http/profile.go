package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
)

// avatarFormField is the multipart form field carrying the avatar image.
const avatarFormField = "avatar"

// maxUpdateFormBytes caps the in-memory size of a profile update form,
// avatar included.
const maxUpdateFormBytes = 8 << 20

// updateUser applies a partial profile update to the authenticated user.
//
// The request is a multipart form: text fields "first_name" and "last_name"
// are each optional, and an absent field leaves the stored value untouched
// while a present-but-empty field clears it. An optional "avatar" file part
// is uploaded to blob storage first; its resulting URL joins the update.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user ID is missing from the request context")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateFormBytes)
	if err := r.ParseMultipartForm(maxUpdateFormBytes); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	update := profileUpdateFromForm(r)

	avatar, err := avatarFromForm(r)
	if err != nil {
		log.Err(err).Msg("failed to read avatar file part")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(ctx, userID, update, avatar)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoFieldsToUpdate):
			// an empty update is not an error: the profile simply stays as is
			log.Debug().Int64("id", userID).Msg("no fields to update")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoFieldsToUpdate}, http.StatusOK)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("id", userID).Msg("profile update rejected by validation")
			writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", userID).Msg("user not found")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrAvatarStorageNotConfigured):
			log.Err(err).Msg("avatar upload requested but blob storage is not configured")
			writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during profile update")
			writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", userID).Msg("profile updated")

	utils.WriteJSON(w, models.UpdateUserResponse{
		Message: app.MsgProfileUpdated,
		User:    updated,
	}, http.StatusOK)
}

// profileUpdateFromForm collects the optional text fields of a parsed
// multipart form. Field presence is significant: only keys that actually
// appear in the form become part of the update.
func profileUpdateFromForm(r *http.Request) models.ProfileUpdate {
	var update models.ProfileUpdate

	if values, ok := r.MultipartForm.Value["first_name"]; ok && len(values) > 0 {
		update.FirstName = &values[0]
	}
	if values, ok := r.MultipartForm.Value["last_name"]; ok && len(values) > 0 {
		update.LastName = &values[0]
	}

	return update
}

// avatarFromForm extracts the optional avatar file part. A missing part is
// not an error and yields a nil upload.
func avatarFromForm(r *http.Request) (*models.AvatarUpload, error) {
	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.AvatarUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
