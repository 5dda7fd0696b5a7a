package repository_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/room/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoteQuery = `UPDATE tour_rooms SET is_starting_room = \$1, modified_at = \$2, modified_by = \$3 +` +
	`WHERE \(tour_rooms\.apartment_id = \$4 AND tour_rooms\.is_starting_room = \$5`

func newRepository(t *testing.T) (sqlmock.Sqlmock, *sqlx.DB, repository.Room) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, sqlxDB, repository.New(conn, otelMocks.NewOtel())
}

func TestDemoteStartingTx(t *testing.T) {
	t.Run("keeps the promoted room", func(t *testing.T) {
		mock, db, repo := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(demoteQuery+` AND tour_rooms\.id != \$6\)`).
			WithArgs(false, sqlmock.AnyArg(), "user-1", "apt-1", true, "room-1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.DemoteStartingTx(context.Background(), tx, "apt-1", "room-1", "user-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("demotes every room when nothing is kept", func(t *testing.T) {
		mock, db, repo := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(demoteQuery+`\)`).
			WithArgs(false, sqlmock.AnyArg(), "user-1", "apt-1", true).
			WillReturnResult(sqlmock.NewResult(0, 0))

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.DemoteStartingTx(context.Background(), tx, "apt-1", "", "user-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, db, repo := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tour_rooms SET`).WillReturnError(errors.New("connection reset"))

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.DemoteStartingTx(context.Background(), tx, "apt-1", "room-1", "user-1")

		assert.ErrorContains(t, err, "failed to demote starting rooms")
		assert.ErrorContains(t, err, "connection reset")
	})
}
