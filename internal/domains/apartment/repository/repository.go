package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/apartment/model"
	gDto "luxhome/shared/dto"
	gRepo "luxhome/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Apartment interface {
	Insert(ctx context.Context, model model.Apartment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Apartment, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Apartment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Apartment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Apartment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Apartment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Apartment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
