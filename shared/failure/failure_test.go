package failure_test

import (
	"errors"
	"fmt"
	"jamat/shared/failure"
	"net/http"
	"testing"
)

var errInverted = errors.New("start_date must not be after end_date")

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Fatal("expected nil for a nil cause")
	}

	err := failure.BadRequest(errInverted)

	if got := failure.GetCode(err); got != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, got)
	}

	if err.Error() != errInverted.Error() {
		t.Errorf("expected message %q, got %q", errInverted.Error(), err.Error())
	}

	if !errors.Is(err, errInverted) {
		t.Error("expected the cause to stay reachable through errors.Is")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("host_mosque_id is required"), code: http.StatusBadRequest, message: "host_mosque_id is required"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), code: http.StatusUnauthorized, message: "Token has expired"},
		{name: "not found", err: failure.NotFound("visit"), code: http.StatusNotFound, message: "visit not found"},
		{name: "invalid credentials", err: failure.InvalidCredentials, code: http.StatusUnauthorized, message: "invalid username or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("connection refused"), want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("register visit: %w", failure.NotFound("mosque")), want: http.StatusNotFound},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestClassifiers(t *testing.T) {
	if !failure.IsValidation(failure.BadRequest(errInverted)) {
		t.Error("expected a bad request to be a validation error")
	}

	if failure.IsValidation(errors.New("disk full")) {
		t.Error("expected a plain error not to be a validation error")
	}
}
