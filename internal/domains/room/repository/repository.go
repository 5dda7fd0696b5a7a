package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/room/model"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	gRepo "luxhome/shared/repository"
	"luxhome/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DemoteStartingTx(ctx context.Context, sqltx *sqlx.Tx, apartmentID, keepID, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DemoteStartingTx clears the starting flag of every room in the apartment except keepID.
// Callers hold the apartment row lock so concurrent promotions serialize.
func (repo *repositoryImpl) DemoteStartingTx(ctx context.Context, sqltx *sqlx.Tx, apartmentID, keepID, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DemoteStartingTx")
	defer scope.End()

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldApartmentID, apartmentID),
		gDto.Eq(model.TableName, model.FieldIsStartingRoom, true).As("current_"+model.FieldIsStartingRoom),
	)

	if keepID != constant.Empty {
		filter.Add(gDto.NotEq(model.TableName, model.FieldID, keepID))
	}

	mod := map[string]any{
		model.FieldIsStartingRoom: false,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err := repo.UpdateTx(ctx, sqltx, mod, filter); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to demote starting rooms: %w", err)
	}

	return nil
}
