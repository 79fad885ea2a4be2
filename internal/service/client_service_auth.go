package service

import (
	"context"
	"strings"

	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
)

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{serverAdapter: serverAdapter, logger: logger}
}

// Register validates the input locally before going to the network, then
// creates the account on the server.
func (s *clientAuthService) Register(ctx context.Context, username, email, password string) (models.RegisteredUser, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return models.RegisteredUser{}, ErrInvalidDataProvided
	}

	created, err := s.serverAdapter.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "Register").Msg("registration on server failed")
		return models.RegisteredUser{}, mapAdapterError(err)
	}

	s.logger.Info().Int64("id", created.ID).Msg("account registered on server")
	return created, nil
}

// Login opens a session: the adapter stores the bearer token on success and
// attaches it to every later request.
func (s *clientAuthService) Login(ctx context.Context, email, password string) (models.SessionUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.SessionUser{}, ErrInvalidDataProvided
	}

	sessionUser, err := s.serverAdapter.Login(ctx, models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "Login").Msg("login on server failed")
		return models.SessionUser{}, mapAdapterError(err)
	}

	s.logger.Info().Int64("id", sessionUser.ID).Msg("session opened")
	return sessionUser, nil
}

func (s *clientAuthService) LoggedIn() bool {
	return s.serverAdapter.Token() != ""
}

func (s *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
