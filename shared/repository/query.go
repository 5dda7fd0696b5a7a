package repository

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"luxhome/shared/dto"
)

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", clause), args
}

// selectList renders the column list. When only is given, other columns are skipped.
func (repo *Repository[T]) selectList(only ...string) string {
	list := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		switch {
		case col.table == "":
			list = append(list, col.name)
		case col.alias != "":
			list = append(list, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			list = append(list, col.table+"."+col.name)
		}
	}

	return strings.Join(list, ", ")
}

func (repo *Repository[T]) insertQuery() string {
	named := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		named[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(named, ", "))
}

// assignments renders SET pairs in column order so statements are stable.
func assignments(mod map[string]any) string {
	cols := slices.Sorted(maps.Keys(mod))

	pairs := make([]string, len(cols))
	for i, col := range cols {
		pairs[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	return strings.Join(pairs, ", ")
}

// orderAndPage renders ORDER BY and LIMIT/OFFSET, adding the paging arguments to args.
// A raw OrderBy wins over the client sort_by, which must name one of the entity's columns.
func (repo *Repository[T]) orderAndPage(params dto.QueryParams, args map[string]any) string {
	var b strings.Builder

	switch {
	case params.OrderBy != "":
		b.WriteString(" ORDER BY " + params.OrderBy)
	case repo.sortable(params.SortBy):
		dir := params.SortDir
		if dir == "" {
			dir = dto.SortDirAsc
		}

		fmt.Fprintf(&b, " ORDER BY %s.%s %s", repo.table, params.SortBy, dir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		b.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			b.WriteString(" OFFSET :offset")
		}
	}

	return b.String()
}

func (repo *Repository[T]) sortable(field string) bool {
	if field == "" {
		return false
	}

	return slices.ContainsFunc(repo.columns, func(col column) bool {
		return col.table == repo.table && col.name == field
	})
}
