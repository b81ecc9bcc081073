// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/yuhu-campus/models"
)

const (
	usersTable   = "users"
	kvSlotsTable = "kv_slots"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id",
	"username",
	"email",
	"name",
	"role",
	"course",
	"year",
	"password_hash",
	"created_at",
}

func buildCreateUserQuery(account models.Account) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("user_id", "username", "email", "name", "role", "course", "year", "password_hash").
		Values(
			account.ID,
			account.Username,
			account.Email,
			account.Name,
			string(account.Role),
			account.Course,
			account.Year,
			account.PasswordHash,
		).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Expr("lower(username) = lower(?)", username)).
		Limit(1).
		ToSql()
}

func buildFindUserByIDQuery(userID string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildGetSlotQuery(key string) (string, []any, error) {
	return sq.
		Select("value").
		From(kvSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSlotQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.
		Insert(kvSlotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSlotQuery(key string) (string, []any, error) {
	return sq.
		Delete(kvSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
