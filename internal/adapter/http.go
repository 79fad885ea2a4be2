package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register and returns the public subset of the created
// account. No session token is issued here; callers Login afterwards.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisteredUser{}, err
	}

	return created.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken, and the session
// payload from the body is returned.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.SessionUser, error) {
	var sessionUser models.SessionUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&sessionUser).
		Post("/api/auth/login")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return sessionUser, nil
}

// GetProfile implements [ServerAdapter]. It GETs /api/user and decodes the
// authenticated user's profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

// GetPoints implements [ServerAdapter]. It GETs /api/points and returns the
// current balance.
func (h *httpServerAdapter) GetPoints(ctx context.Context) (int64, error) {
	resp, err := h.authedRequest(ctx).Get("/api/points")
	if err != nil {
		return 0, fmt.Errorf("get points request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var pr models.PointsResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return 0, fmt.Errorf("decode points response: %w", err)
	}

	return pr.Points, nil
}

// AwardPoints implements [ServerAdapter]. It POSTs to /api/points with an
// empty body (the award amount is fixed server-side) and returns the new
// balance.
func (h *httpServerAdapter) AwardPoints(ctx context.Context) (int64, error) {
	resp, err := h.authedRequest(ctx).Post("/api/points")
	if err != nil {
		return 0, fmt.Errorf("award points request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var ar models.AwardResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return 0, fmt.Errorf("decode award response: %w", err)
	}

	return ar.NewPoints, nil
}

// UpdateProfile implements [ServerAdapter]. It POSTs a multipart form to
// /api/update-user: one text part per non-nil update field and an optional
// file part for the avatar.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdateUserResponse, error) {
	req := h.authedRequest(ctx)

	fields := map[string]string{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	req.SetMultipartFormData(fields)

	if avatar != nil {
		req.SetMultipartField("avatar", avatar.Filename, avatar.ContentType, bytes.NewReader(avatar.Data))
	}

	resp, err := req.Post("/api/update-user")
	if err != nil {
		return models.UpdateUserResponse{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateUserResponse{}, err
	}

	// the "no fields to update" reply carries only a message; decoding it
	// into UpdateUserResponse leaves User zero, which callers can detect
	var ur models.UpdateUserResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.UpdateUserResponse{}, fmt.Errorf("decode update profile response: %w", err)
	}

	return ur, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version and
// returns the plain-text version string.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
