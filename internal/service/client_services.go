// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	SessionStore SessionStore
}

func NewClientServices(verifier adapter.CredentialVerifier, storages *store.ClientStorages, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionStore: NewSessionStore(verifier, storages.Vault, log),
	}
}
