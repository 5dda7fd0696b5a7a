// Package repository is the generic sqlx data access every domain repository embeds.
// Columns come from the `db` tags of the model; a `table` tag marks a joined column and
// a `column` tag selects it under a different name.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/shared/constant"
	"luxhome/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var errRequiredFilter = errors.New("required filter")

// IsUniqueViolation reports whether err carries a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// Joiner is implemented by read models that select from more than one table.
type Joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
	alias string
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	insertColumns []string
	join          string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
		join:          join,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op))
}

// fail logs and traces err, then wraps it with the operation and entity name.
func (repo *Repository[T]) fail(scope otel.Scope, err error, action string) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, err)
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, name)
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: name})
		} else {
			columns = append(columns, column{name: name, table: owner})
		}
	}

	return columns, insertColumns
}
