package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/hotspot/model"
	gDto "luxhome/shared/dto"
	gRepo "luxhome/shared/repository"
)

type Hotspot interface {
	Insert(ctx context.Context, model model.Hotspot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotspot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotspot, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotspot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotspot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotspot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
