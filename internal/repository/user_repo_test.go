package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"tempconv/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "password_hash", "created_at"}

func newUserRepo(t *testing.T) (*UserSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewUserSQLite(db), mock
}

func TestUserSQLite_CreateStoresUTCTimestamp(t *testing.T) {
	repo, mock := newUserRepo(t)
	jakarta := time.FixedZone("WIB", 7*3600)
	created := time.Date(2025, 3, 14, 16, 0, 0, 0, jakarta)

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("operator", "bcrypt-hash", created.UTC()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	u, err := repo.Create(context.Background(), models.User{
		Username:     "operator",
		PasswordHash: "bcrypt-hash",
		CreatedAt:    created,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
	assert.True(t, u.CreatedAt.Equal(created))
}

func TestUserSQLite_CreateTakenUsername(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("operator", "h", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Create(context.Background(), models.User{Username: "operator", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestUserSQLite_CreateExecError(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Create(context.Background(), models.User{Username: "operator", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserExists)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestUserSQLite_GetByUsername(t *testing.T) {
	repo, mock := newUserRepo(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("operator").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "Operator", "h", created))

	u, err := repo.GetByUsername(context.Background(), "operator")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 7, Username: "Operator", PasswordHash: "h", CreatedAt: created}, u)
}

func TestUserSQLite_GetByUsernameMissing(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserSQLite_ListInCreationOrder(t *testing.T) {
	repo, mock := newUserRepo(t)
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(listUsersSQL)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "h1", t0).
			AddRow(2, "bob", "h2", t0.Add(time.Hour)))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserSQLite_ListScanError(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(listUsersSQL)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("not-an-int", "alice", "h", time.Now()))

	_, err := repo.List(context.Background())
	require.Error(t, err)
}
