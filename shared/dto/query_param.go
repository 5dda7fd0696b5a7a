package dto

import (
	"net/http"
	"strconv"
	"strings"

	"luxhome/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`

	// OrderBy is a raw ORDER BY clause set by repositories, never from requests.
	OrderBy string `json:"-"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Invalid numbers
// are ignored and limit is capped at constant.MaxValueLimit. With withDefaults a missing page or
// limit falls back to the list defaults; listing endpoints always pass true.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage))
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit)), constant.MaxValueLimit)
	q.SortBy = strings.TrimSpace(query.Get(constant.RequestParamSortBy))

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positiveInt(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}

	return value
}
