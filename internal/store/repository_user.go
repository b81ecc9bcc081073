// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Usernames are matched case-insensitively.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts account and returns it with the server-assigned
// CreatedAt.
//
// Errors:
//   - unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&account.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrUsernameAlreadyExists
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// FindUserByUsername returns the account whose username equals username
// ignoring case, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.Account, error) {
	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.findOne(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error finding user")
	}
	return found, err
}

// FindUserByID returns the account with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.Account, error) {
	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.findOne(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error finding user")
	}
	return found, err
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.Account, error) {
	var (
		found models.Account
		role  string
	)
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&found.ID,
			&found.Username,
			&found.Email,
			&found.Name,
			&role,
			&found.Course,
			&found.Year,
			&found.PasswordHash,
			&found.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found.Role, err = models.ParseRole(role)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
