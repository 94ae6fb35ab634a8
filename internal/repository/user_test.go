package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/filedrop/filedrop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	createdAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "hash", createdAt).
		WillReturnResult(sqlmock.NewResult(3, 1))

	user := &model.User{Username: "alice", PasswordHash: "hash", CreatedAt: createdAt}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, int64(3), user.ID)
}

func TestUserCreateDuplicate(t *testing.T) {
	tests := []struct {
		name  string
		dbErr error
	}{
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: users.username")},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key"`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
				WillReturnError(tc.dbErr)

			err := repo.Create(&model.User{Username: "alice", PasswordHash: "hash", CreatedAt: time.Now()})
			assert.ErrorIs(t, err, ErrDuplicateUsername)
		})
	}
}

func TestUserByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE username = $1`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(3, "alice", "hash", time.Now()))

	user, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE username = $1`)).
		WithArgs("bob").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ByUsername("bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
