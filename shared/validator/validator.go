package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"jamat/shared/constant"
	"jamat/shared/date"
	"jamat/shared/failure"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	tagDate   = "date"
	tagFilter = "idfilter"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	rules := map[string]val.Func{
		tagDate:   isDate,
		tagFilter: isIDFilter,
	}

	for tag, rule := range rules {
		if err := v.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("register %s rule: %v", tag, err))
		}
	}

	return v
}

// isDate accepts a calendar date written as YYYY-MM-DD.
func isDate(field val.FieldLevel) bool {
	_, err := date.Parse(field.Field().String())

	return err == nil
}

// isIDFilter accepts the "all" sentinel or a positive integer id.
func isIDFilter(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == constant.Empty || strings.EqualFold(value, constant.FilterAll) {
		return true
	}

	id, err := strconv.ParseInt(value, 10, 64)

	return err == nil && id > 0
}

// jsonName reports fields by their wire name so messages match what the client sent.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	default:
		return name
	}
}

// Validate decodes a JSON body into data and checks its validate tags.
// Both a malformed body and a failed rule come back as a 400 failure.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
