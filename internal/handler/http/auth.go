// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/utils"
	"github.com/MKhiriev/yuhu-campus/models"
)

// register creates a student account and answers like login: the user as
// JSON and a bearer token in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeServiceError(w, err)
		return
	}

	h.writeUserWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	log.Debug().Str("username", credentials.NormalizedUsername()).Msg("login attempt")

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	h.writeUserWithToken(w, r, user, http.StatusOK)
}

// me returns the profile of the user authenticated by the bearer token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error getting current user")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeUserWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, user, status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
