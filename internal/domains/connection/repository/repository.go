package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/connection/model"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	gRepo "luxhome/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Connection interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Connection) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Connection, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Connection, error)
	GetDetails(ctx context.Context, filter gDto.FilterGroup) ([]model.ConnectionDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteCount(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Connection]
	details gRepo.Repository[model.ConnectionDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Connection {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Connection](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.ConnectionDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertTx reports a repeated (from_room_id, to_room_id) pair as ErrDuplicateConnection.
func (repo *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, connection model.Connection) error {
	err := repo.Repository.InsertTx(ctx, sqltx, connection)
	if gRepo.IsUniqueViolation(err) {
		return model.ErrDuplicateConnection
	}

	return err //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	err := repo.Repository.UpdateTx(ctx, sqltx, req, filter)
	if gRepo.IsUniqueViolation(err) {
		return model.ErrDuplicateConnection
	}

	return err //nolint:wrapcheck
}

// GetDetails lists connections with their target room name and type, oldest first.
func (repo *repositoryImpl) GetDetails(ctx context.Context, filter gDto.FilterGroup) ([]model.ConnectionDetail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetDetails")
	defer scope.End()

	params := gDto.QueryParams{OrderBy: model.TableName + "." + model.FieldCreatedAt + " ASC"}

	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}
