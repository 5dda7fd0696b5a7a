package repository_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/connection/model"
	"luxhome/internal/domains/connection/repository"
	gDto "luxhome/shared/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (sqlmock.Sqlmock, *sqlx.Tx, repository.Connection) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	mock.ExpectBegin()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, tx, repository.New(conn, otelMocks.NewOtel())
}

func connection() model.Connection {
	return model.Connection{
		ID:                  "conn-1",
		FromRoomID:          "living",
		ToRoomID:            "kitchen",
		HotspotX:            40,
		HotspotY:            55,
		Icon:                model.DefaultIcon,
		HotspotSize:         model.DefaultHotspotSize,
		HotspotColor:        model.DefaultHotspotColor,
		TransitionAnimation: model.DefaultTransitionAnimation,
		IsActive:            true,
	}
}

func TestInsertTx(t *testing.T) {
	t.Run("inserted", func(t *testing.T) {
		mock, tx, repo := newRepository(t)

		mock.ExpectExec(`INSERT INTO room_connections \(`).WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.InsertTx(context.Background(), tx, connection()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated room pair", func(t *testing.T) {
		mock, tx, repo := newRepository(t)

		mock.ExpectExec(`INSERT INTO room_connections \(`).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.InsertTx(context.Background(), tx, connection())

		assert.ErrorIs(t, err, model.ErrDuplicateConnection)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		mock, tx, repo := newRepository(t)

		mock.ExpectExec(`INSERT INTO room_connections \(`).WillReturnError(errors.New("connection reset"))

		err := repo.InsertTx(context.Background(), tx, connection())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrDuplicateConnection)
	})
}

func TestUpdateTx(t *testing.T) {
	mock, tx, repo := newRepository(t)

	mock.ExpectExec(`UPDATE room_connections SET to_room_id = \$1 +WHERE \(room_connections\.id = \$2\)`).
		WithArgs("bedroom", "conn-1").
		WillReturnError(&pq.Error{Code: "23505"})

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: "conn-1", Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	err := repo.UpdateTx(context.Background(), tx, map[string]any{model.FieldToRoomID: "bedroom"}, filter)

	assert.ErrorIs(t, err, model.ErrDuplicateConnection)
	assert.NoError(t, mock.ExpectationsWereMet())
}
