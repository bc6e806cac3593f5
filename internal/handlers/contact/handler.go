package contact

import (
	"jamat/infras/otel"
	"jamat/internal/domains/contact/model/dto"
	"jamat/internal/domains/contact/service"
	"jamat/shared/constant"
	"jamat/shared/validator"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SubmitContact)
}

// SubmitContact stores a message from the public contact form.
// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Message"
// @Success 201 {object} response.Data[dto.SubmitContactResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.SubmitContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
