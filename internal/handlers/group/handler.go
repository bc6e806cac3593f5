package group

import (
	"jamat/infras/otel"
	"jamat/internal/domains/group/service"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Group
	otel    otel.Otel
}

func New(service service.Group, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/groups", handler.GetGroups)
}

// GetGroups lists external groups ordered by name.
// @Summary List external groups
// @Tags Group
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetGroupsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/groups [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	groups, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get groups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, groups)
}
