package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/user/model"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	gRepo "luxhome/shared/repository"

	"github.com/pkg/errors"
)

const touchLastLogin = `UPDATE users SET last_login = $1 WHERE id = $2`

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindByEmail(ctx context.Context, email string) (model.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindByEmail returns the zero User when no account matches.
func (repo *repositoryImpl) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return repo.Get(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldEmail, strings.TrimSpace(email))))
}

// TouchLastLogin records a successful login without touching the audit columns.
func (repo *repositoryImpl) TouchLastLogin(ctx context.Context, id string, at time.Time) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".TouchLastLogin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, touchLastLogin)

	if _, err = repo.db.Write.ExecContext(ctx, touchLastLogin, at, id); err != nil {
		return errors.Wrap(err, "failed to record last login")
	}

	return nil
}
