// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

type appInfoService struct {
	version string
}

func NewAppInfoService(version string) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return &appInfoService{version: version}, nil
}

func (a *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("version", a.version).Msg("version requested")
	return a.version
}
