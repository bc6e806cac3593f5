package response_test

import (
	"errors"
	"jamat/shared/constant"
	"jamat/shared/failure"
	"jamat/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "client error keeps its message",
			err:      failure.BadRequestFromString("host_mosque_id is required"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"host_mosque_id is required"}`,
		},
		{
			name:     "not found",
			err:      failure.NotFound("visit"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"visit not found"}`,
		},
		{
			name:     "server error is masked",
			err:      errors.New(`pq: relation "visits" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"` + constant.ResponseErrorInternal + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":7}}`, recorder.Body.String())
}

func TestWithUnauthorized(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithUnauthorized(recorder, "Login Required", failure.InvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, `Basic realm="Login Required"`, recorder.Header().Get(constant.RequestHeaderWWWAuthenticate))
	assert.JSONEq(t, `{"error":"invalid username or password"}`, recorder.Body.String())
}

func TestCannedResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(http.ResponseWriter)
		wantCode int
		wantMsg  string
	}{
		{name: "limit", write: response.WithRequestLimitExceeded, wantCode: http.StatusTooManyRequests, wantMsg: constant.ResponseErrorRequestLimitExceeded},
		{name: "shutdown", write: response.WithPreparingShutdown, wantCode: http.StatusServiceUnavailable, wantMsg: constant.ResponseErrorPrepareShutdown},
		{name: "unhealthy", write: response.WithUnhealthy, wantCode: http.StatusServiceUnavailable, wantMsg: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			tt.write(recorder)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, `{"message":"`+tt.wantMsg+`"}`, recorder.Body.String())
		})
	}
}
