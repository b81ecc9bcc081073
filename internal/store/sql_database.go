// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/migrations"
)

// retryDelays are the pauses between attempts of a retryable call.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

// DB wraps *sql.DB with the dialect used for migrations and an optional
// error classifier driving retries.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op, repeating it while the classifier reports the error as
// [Retryable]. Without a classifier op runs once.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Dur("delay", delay).Msg("retrying database call")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
