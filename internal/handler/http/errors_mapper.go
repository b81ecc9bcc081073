// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Internal
// failures are reported with the generic status text only.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(status), status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
