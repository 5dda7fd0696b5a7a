package helper_test

import (
	"context"
	"errors"
	"testing"

	"luxhome/helper"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSuperAdmin(t *testing.T) {
	t.Run("upserts the account", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		sqlxDB := sqlx.NewDb(db, "postgres")
		defer sqlxDB.Close()

		mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT \(email\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = helper.InsertSuperAdmin(context.Background(), sqlxDB, "root@luxhome.example", "changeme")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email is required", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)

		sqlxDB := sqlx.NewDb(db, "postgres")
		defer sqlxDB.Close()

		err = helper.InsertSuperAdmin(context.Background(), sqlxDB, "", "changeme")

		assert.EqualError(t, err, "email is required")
	})

	t.Run("database error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		sqlxDB := sqlx.NewDb(db, "postgres")
		defer sqlxDB.Close()

		mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("relation \"users\" does not exist"))

		err = helper.InsertSuperAdmin(context.Background(), sqlxDB, "root@luxhome.example", "changeme")

		assert.ErrorContains(t, err, "failed to save superadmin")
	})
}
