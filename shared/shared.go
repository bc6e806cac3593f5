package shared

import (
	"jamat/shared/constant"
	"jamat/shared/dto"
	"jamat/shared/failure"
	"math"
	"strconv"
	"strings"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins non-empty parts with ':'.
func BuildCacheKey(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, ":")
}

// ParseID parses a positive integer id from a path or query parameter.
func ParseID(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(name + " must be a positive integer")
	}

	return id, nil
}

// ParseIDFilter returns nil for the "all" sentinel or an empty value, otherwise the parsed id.
func ParseIDFilter(value, name string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty || strings.EqualFold(value, constant.FilterAll) {
		return nil, nil
	}

	id, err := ParseID(value, name)
	if err != nil {
		return nil, failure.BadRequestFromString(name + " must be 'all' or a numeric id")
	}

	return &id, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
