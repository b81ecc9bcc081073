// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// sqliteStore keeps slots in the kv_slots table of the local SQLite file.
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSQLiteStore(db *DB, log *logger.Logger) SecureStore {
	return &sqliteStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSlotQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("error reading slot")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSlotQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("error writing slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSlotQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("error deleting slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
