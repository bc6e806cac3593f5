package dto

import (
	"jamat/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams pages and orders a listing. SortBy is interpolated into SQL, so it is set by
// services and never read from a request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=0"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"-"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit and sort_dir. Malformed or non-positive numbers are ignored,
// a page without a limit gets the default page size and limits are capped.
func (q *QueryParams) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Page = positive(query.Get(constant.RequestParamPage))
	q.Limit = min(positive(query.Get(constant.RequestParamLimit)), constant.MaxValueLimit)

	if q.Page > 0 && q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	switch dir := strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamSortDir))); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}
}

func positive(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
