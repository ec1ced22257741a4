package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfontan/docchat-server/internal/model"
)

func newUserMock(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, repo := newUserMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("user@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at", "deleted_at"}).
			AddRow(id, "user@example.com", "$argon2id$hash", now, now, nil))

	user, err := repo.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "$argon2id$hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	mock, repo := newUserMock(t)
	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        "new@example.com",
		PasswordHash: "$argon2id$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at", "deleted_at"}).
			AddRow(user.ID, user.Email, user.PasswordHash, now, now, nil))

	saved, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, saved.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	mock, repo := newUserMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs(id, "$argon2id$new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), id, "$argon2id$new"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash_NotFound(t *testing.T) {
	mock, repo := newUserMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs(id, "$argon2id$new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdatePasswordHash(context.Background(), id, "$argon2id$new")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
