// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery(testAccount())
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning created_at")
	assert.Contains(t, query, "$8")
	require.Len(t, args, 8)
	assert.Equal(t, "student", args[4])
}

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	query, args, err := buildFindUserByUsernameQuery("Student")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "lower(username) = lower($1)")
	assert.Contains(t, q, "limit 1")
	for _, c := range userColumns {
		assert.Contains(t, q, c)
	}
	assert.Equal(t, []any{"Student"}, args)
}

func Test_buildSlotQueries(t *testing.T) {
	query, args, err := buildGetSlotQuery("yuhu_session")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv_slots WHERE key = ?", query)
	assert.Equal(t, []any{"yuhu_session"}, args)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query, args, err = buildUpsertSlotQuery("yuhu_session", "blob", now)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO kv_slots")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE")
	assert.Equal(t, []any{"yuhu_session", "blob", now}, args)

	query, args, err = buildDeleteSlotQuery("yuhu_session")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv_slots WHERE key = ?", query)
	assert.Equal(t, []any{"yuhu_session"}, args)
}
