package mosque

import (
	"jamat/infras/otel"
	"jamat/internal/domains/mosque/service"
	"jamat/shared"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Mosque
	otel    otel.Otel
}

func New(service service.Mosque, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mosques", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMosques)
		routerGroup.Get("/{id}", handler.GetMosqueByID)
	})
}

// GetMosques lists every mosque ordered by name.
// @Summary List mosques
// @Description Retrieve all mosques ordered by name. Without a limit every mosque is returned on one page.
// @Tags Mosque
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetMosquesResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mosques [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetMosques(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMosques")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	mosques, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get mosques")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mosques retrieved successfully")

	response.WithJSON(w, http.StatusOK, mosques)
}

// GetMosqueByID returns a mosque with the visits it hosted.
// @Summary Get a mosque
// @Description Retrieve a mosque and every visit it hosted, oldest first.
// @Tags Mosque
// @Produce json
// @Param id path int true "Mosque ID"
// @Success 200 {object} response.Data[dto.MosqueDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mosques/{id} [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetMosqueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMosqueByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid mosque id")

		response.WithError(w, err)

		return
	}

	mosque, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get mosque")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, mosque)
}
