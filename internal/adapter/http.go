// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/utils"
	"github.com/MKhiriev/yuhu-campus/models"
)

const (
	loginPath = "/api/auth/login"
	mePath    = "/api/auth/me"
)

type httpVerifier struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVerifier builds a [RemoteVerifier] talking to the auth server at
// adapterCfg.HTTPAddress. A scheme-less address is treated as http.
func NewHTTPVerifier(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteVerifier, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpVerifier{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
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

func (h *httpVerifier) setToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

// Token implements [RemoteVerifier].
func (h *httpVerifier) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Verify implements [CredentialVerifier] by posting the credentials to
// POST /api/auth/login. A 401 answer is reported as [ErrInvalidCredentials].
func (h *httpVerifier) Verify(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(loginPath)
	if err != nil {
		h.logger.Err(err).Msg("login request failed")
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return models.User{}, ErrInvalidCredentials
		}
		h.logger.Err(err).Int("status", resp.StatusCode()).Msg("login rejected")
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	user, err := decodeUser(resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	h.setToken(token)
	return user, nil
}

// Me implements [RemoteVerifier] via GET /api/auth/me.
func (h *httpVerifier) Me(ctx context.Context) (models.User, error) {
	token := h.Token()
	if token == "" {
		return models.User{}, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(mePath)
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	user, err := decodeUser(resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("me: %w", err)
	}

	return user, nil
}

func decodeUser(body []byte) (models.User, error) {
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}
	return user, nil
}
