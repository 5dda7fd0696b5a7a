package repository

import (
	"context"
	"fmt"
	"maps"

	"luxhome/shared/constant"
	"luxhome/shared/dto"

	"github.com/jmoiron/sqlx"
)

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, err, "insert data")
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, repo.db.Write, mod, filter)

	return err
}

// UpdateCount behaves like Update and reports how many rows matched the filter.
func (repo *Repository[T]) UpdateCount(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, sqltx, mod, filter)

	return err
}

// update refuses to run without a filter. Filter and value arguments share one namespace,
// so filters on an updated column need Filter.As.
func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := repo.where(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, assignments(mod), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, err, "update data")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, err, "read affected rows")
	}

	return affected, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	_, err := repo.delete(ctx, repo.db.Write, filter)

	return err
}

// DeleteCount behaves like Delete and reports how many rows were removed.
func (repo *Repository[T]) DeleteCount(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	where, args := repo.where(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, err, "delete data")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, err, "read affected rows")
	}

	return affected, nil
}
