// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(42, "alice", "alice@example.com", "secret")
	mock.ExpectQuery("SELECT .+ FROM `users` WHERE email = \\?").
		WillReturnRows(rows)

	user, err := svc.Authenticate(&LoginRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(42, "alice", "alice@example.com", "secret")
	mock.ExpectQuery("SELECT .+ FROM `users` WHERE email = \\?").
		WillReturnRows(rows)

	user, err := svc.Authenticate(&LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	user, err := svc.Authenticate(&LoginRequest{Email: "nobody@example.com", Password: "secret"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthenticateMalformedForm(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(db)

	// Invalid email shape never reaches the database.
	user, err := svc.Authenticate(&LoginRequest{Email: "not-an-email", Password: "secret"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAuthentication)

	user, err = svc.Authenticate(&LoginRequest{Email: "alice@example.com"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestUpdateLastLoginUsesAdjustedClock(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectExec("UPDATE users SET last_login = \\? WHERE id = \\?").
		WithArgs(adjustedNowArg{}, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.UpdateLastLogin(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserMissingReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	user, err := svc.GetUser(9999)
	require.NoError(t, err)
	assert.Nil(t, user)
}
