package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
)

// sessionCookieName is the cookie carrying the session JWT for browser
// clients. API clients use the "Authorization" header instead; the auth
// middleware accepts either.
const sessionCookieName = "lotus_session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			// a duplicate email is a client mistake, same as any other
			// invalid registration input
			log.Err(err).Msg("email already exists")
			writeError(w, app.MsgEmailAlreadyExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		User: models.RegisteredUser{
			ID:       registeredUser.UserID,
			Email:    registeredUser.Email,
			Username: registeredUser.Username,
		},
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email/password")
			writeError(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		default:
			// covers ErrMissingPasswordHash: a corrupt account record is a
			// server fault, not a credential failure
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, app.MsgLoginFailed, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.setSessionCookie(w, token)

	utils.WriteJSON(w, sessionUserFrom(foundUser), http.StatusOK)
}

// setSessionCookie mirrors the bearer token into an HttpOnly cookie so that
// browser clients stay logged in without storing the token themselves.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

// sessionUserFrom shapes a persisted user into the login response payload.
// Points is rendered as a string in this payload only; see models.SessionUser.
func sessionUserFrom(user models.User) models.SessionUser {
	return models.SessionUser{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Points:    strconv.FormatInt(user.Points, 10),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}
