package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"luxhome/shared/constant"
	"luxhome/shared/dto"

	"github.com/jmoiron/sqlx"
)

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.where(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, repo.fail(scope, err, "check exist data")
	}
	defer stmt.Close()

	exist := false
	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		return false, repo.fail(scope, err, "check exist data")
	}

	return exist, nil
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, filter, false, columns...)
}

// GetTx reads through the transaction and locks the matched rows until it ends.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, filter, true, columns...)
}

func (repo *Repository[T]) get(ctx context.Context, q preparer, filter dto.FilterGroup, lock bool, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.where(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns...), repo.table, repo.join, where)
	if lock {
		query += " FOR UPDATE"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := q.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, err, "prepare statement")
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		return model, repo.fail(scope, err, "get data")
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.where(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s%s",
		repo.selectList(columns...), repo.table, repo.join, where, repo.orderAndPage(params, args))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, err, "prepare statement")
	}
	defer stmt.Close()

	var models []T
	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, err, "get all data")
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.where(filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, err, "prepare statement")
	}
	defer stmt.Close()

	count := 0
	if err = stmt.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, err, "count data")
	}

	return count, nil
}
