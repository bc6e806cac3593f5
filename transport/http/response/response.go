package response

import (
	"encoding/json"
	"jamat/shared/constant"
	"jamat/shared/failure"
	"jamat/shared/logger"
	"net/http"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in a {"data": ...} envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithUnauthorized adds a Basic challenge so browsers and curl prompt for the shared credentials.
func WithUnauthorized(writer http.ResponseWriter, realm string, err error) {
	writer.Header().Set(constant.RequestHeaderWWWAuthenticate, `Basic realm="`+realm+`"`)
	WithError(writer, err)
}

// WithError writes the failure message for client errors. Server errors are logged and
// answered with a generic message so storage details never reach the caller.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		message = constant.ResponseErrorInternal
	}

	write(writer, code, Error{Error: &message})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
