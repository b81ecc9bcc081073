// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// NewRetryingDB exposes the retry loop to external tests.
func NewRetryingDB(c ErrorClassificator) *DB {
	return &DB{errorClassificator: c, logger: logger.Nop()}
}

func (db *DB) WithRetry(ctx context.Context, op func() error) error {
	return db.withRetry(ctx, op)
}
