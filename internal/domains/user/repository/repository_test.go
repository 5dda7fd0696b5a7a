package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/user/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (sqlmock.Sqlmock, repository.User) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return mock, repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, otelMocks.NewOtel())
}

func TestFindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newRepository(t)

		mock.ExpectPrepare(`SELECT .+ FROM users +WHERE \(users\.email = \$1\)`).
			ExpectQuery().
			WithArgs("agent@luxhome.example").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "active"}).
				AddRow("user-1", "agent@luxhome.example", "admin", true))

		user, err := repo.FindByEmail(context.Background(), " agent@luxhome.example ")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.True(t, user.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no account", func(t *testing.T) {
		mock, repo := newRepository(t)

		mock.ExpectPrepare(`SELECT .+ FROM users`).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.FindByEmail(context.Background(), "nobody@luxhome.example")

		require.NoError(t, err)
		assert.Empty(t, user.ID)
	})
}

func TestTouchLastLogin(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		mock, repo := newRepository(t)

		mock.ExpectExec(`UPDATE users SET last_login = \$1 WHERE id = \$2`).
			WithArgs(at, "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.TouchLastLogin(context.Background(), "user-1", at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, repo := newRepository(t)

		mock.ExpectExec(`UPDATE users`).WillReturnError(errors.New("connection reset"))

		err := repo.TouchLastLogin(context.Background(), "user-1", at)

		assert.EqualError(t, err, "failed to record last login: connection reset")
	})
}
