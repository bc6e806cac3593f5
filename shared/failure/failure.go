package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the client caused, carrying the HTTP status it maps to. Anything that is
// not a Failure is a storage or programming error and surfaces as 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var InvalidCredentials = &Failure{Code: http.StatusUnauthorized, Message: "invalid username or password"}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel a Failure was built from, so errors.Is still matches it.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest classifies err as a validation error. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// NotFound reports a missing entity by name, e.g. NotFound("visit").
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName + " not found"}
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
