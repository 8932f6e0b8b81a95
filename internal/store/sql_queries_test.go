package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-starter/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const selectUser = "SELECT user_id, login, name, password_hash, created_at, updated_at FROM users"

func strPtr(s string) *string { return &s }

func TestBuildCreateUserQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{Login: "alice", Name: "Alice", PasswordHash: "hash"}

	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres placeholders",
			builder: dollar,
			want:    "INSERT INTO users (login,name,password_hash,created_at,updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING user_id, login, name, password_hash, created_at, updated_at",
		},
		{
			name:    "sqlite placeholders",
			builder: question,
			want:    "INSERT INTO users (login,name,password_hash,created_at,updated_at) VALUES (?,?,?,?,?) RETURNING user_id, login, name, password_hash, created_at, updated_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCreateUserQuery(tt.builder, user, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"alice", "Alice", "hash", now, now}, args)
		})
	}
}

func TestBuildFindUserQuery(t *testing.T) {
	query, args, err := buildFindUserQuery(dollar, sq.Eq{"login": "alice"})
	require.NoError(t, err)
	assert.Equal(t, selectUser+" WHERE login = $1", query)
	assert.Equal(t, []any{"alice"}, args)

	query, args, err = buildFindUserQuery(question, sq.Eq{"user_id": int64(7)})
	require.NoError(t, err)
	assert.Equal(t, selectUser+" WHERE user_id = ?", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery(dollar, models.ListUsersRequest{Limit: 20, Offset: 40})
	require.NoError(t, err)
	assert.Equal(t, selectUser+" ORDER BY user_id LIMIT 20 OFFSET 40", query)
	assert.Empty(t, args)
}

func TestBuildUpdateUserQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		update   models.UserUpdate
		wantSet  string
		wantArgs []any
	}{
		{
			name:     "name only",
			update:   models.UserUpdate{Name: strPtr("Bob")},
			wantSet:  "SET name = $1, updated_at = $2 WHERE user_id = $3",
			wantArgs: []any{"Bob", now, int64(1)},
		},
		{
			name:     "password hash only",
			update:   models.UserUpdate{PasswordHash: strPtr("h2")},
			wantSet:  "SET password_hash = $1, updated_at = $2 WHERE user_id = $3",
			wantArgs: []any{"h2", now, int64(1)},
		},
		{
			name:     "both fields",
			update:   models.UserUpdate{Name: strPtr("Bob"), PasswordHash: strPtr("h2")},
			wantSet:  "SET name = $1, password_hash = $2, updated_at = $3 WHERE user_id = $4",
			wantArgs: []any{"Bob", "h2", now, int64(1)},
		},
		{
			name:     "plain password is never written",
			update:   models.UserUpdate{Password: strPtr("plain")},
			wantSet:  "SET updated_at = $1 WHERE user_id = $2",
			wantArgs: []any{now, int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(dollar, 1, tt.update, now)
			require.NoError(t, err)
			assert.Equal(t, "UPDATE users "+tt.wantSet+" "+returningUser, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUserQueries_UseModelTable(t *testing.T) {
	table := models.User{}.TableName()

	insert, _, err := buildCreateUserQuery(dollar, models.User{Login: "a"}, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(insert, "INSERT INTO "+table+" "))

	del, _, err := buildDeleteUserQuery(dollar, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(del, "DELETE FROM "+table+" "))
}

func TestBuildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(question, 3)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE user_id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}
