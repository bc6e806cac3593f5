package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorIn        = "in"
	FilterIsNull            = "is_null"
	FilterIsNotNull         = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one predicate bound through a named parameter. ArgName defaults to Field and
// must be unique within a query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

// GetWhereClause renders the predicate. Unknown operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	if op, ok := comparisons[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), op, argName), args
	}

	switch f.Operator {
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if kind := val.Kind(); kind != reflect.Slice && kind != reflect.Array || val.Len() == 0 {
			// an empty set matches nothing
			return "1 = 0", args
		}

		binds := make([]string, val.Len())
		for i := range val.Len() {
			name := fmt.Sprintf("%s_%d", argName, i)
			args[name] = val.Index(i).Interface()
			binds[i] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", f.column(), strings.Join(binds, ", ")), args
	case FilterIsNull:
		return f.column() + " IS NULL", args
	case FilterIsNotNull:
		return f.column() + " IS NOT NULL", args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

func And(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}

func Or(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorOr}
}

// GetWhereClause joins the members with the group operator, AND when unset. Empty members are
// dropped and an empty group renders nothing.
func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, member := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch m := member.(type) {
		case Filter:
			where, arg = m.GetWhereClause()
		case FilterGroup:
			where, arg = m.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
