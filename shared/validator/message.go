package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"max":      "{field} must be at most {param} characters",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	tagDate:    "{field} must be a date in YYYY-MM-DD format",
	tagFilter:  "{field} must be 'all' or a numeric id",
}

// message describes the first failing field. Tags without a template fall back to the library text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	first := fieldErrors[0]

	template, ok := messages[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
