package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorNotEq = "not_eq"
	FilterOperatorIn    = "in"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Clause renders a WHERE fragment with sqlx named arguments.
type Clause interface {
	GetWhereClause() (string, map[string]any)
}

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq in"`
	Table    string
}

func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

func NotEq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorNotEq}
}

// In matches field against every element of values, which must be a slice or array.
func In(table, field string, values any) Filter {
	return Filter{Table: table, Field: field, Value: values, Operator: FilterOperatorIn}
}

// As renames the named argument so one field can appear twice in a statement.
func (f Filter) As(argName string) Filter {
	f.ArgName = argName

	return f
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	column, arg := f.column(), f.arg()

	switch f.Operator {
	case FilterOperatorEq:
		return fmt.Sprintf("%s = :%s", column, arg), map[string]any{arg: f.Value}
	case FilterOperatorNotEq:
		return fmt.Sprintf("%s != :%s", column, arg), map[string]any{arg: f.Value}
	case FilterOperatorIn:
		return f.inClause(column, arg)
	default:
		return "", map[string]any{}
	}
}

// inClause expands one named argument per element. An empty list matches nothing.
func (f *Filter) inClause(column, arg string) (string, map[string]any) {
	args := map[string]any{}

	val := reflect.ValueOf(f.Value)
	if !val.IsValid() || (val.Kind() != reflect.Slice && val.Kind() != reflect.Array) {
		return "", args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", arg, idx)
		args[key] = val.Index(idx).Interface()
		named[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// And groups clauses with AND.
func And(clauses ...Clause) FilterGroup {
	group := FilterGroup{Operator: FilterGroupOperatorAnd, Filters: make([]any, len(clauses))}
	for i, clause := range clauses {
		group.Filters[i] = clause
	}

	return group
}

// Add appends clauses to the group.
func (f *FilterGroup) Add(clauses ...Clause) {
	for _, clause := range clauses {
		f.Filters = append(f.Filters, clause)
	}
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := []string{}

	for _, filter := range f.Filters {
		clause, ok := filter.(Clause)
		if !ok {
			continue
		}

		where, arg := clause.GetWhereClause()
		if where == "" {
			continue
		}

		parts = append(parts, where)

		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, " "+operator+" ")), args
}
