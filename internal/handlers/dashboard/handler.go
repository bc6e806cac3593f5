package dashboard

import (
	"jamat/infras/otel"
	"jamat/internal/domains/dashboard/service"
	"jamat/internal/handlers/visit"
	"jamat/shared/constant"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
}

// GetDashboard returns the visits in a window with per-host and per-visitor counts.
// @Summary Dashboard
// @Description Every visit whose start date falls inside the window with counts by host and by visiting mosque.
// @Description Names that cannot be resolved are counted under "Unknown".
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD), defaults to the reporting epoch"
// @Param end_date query string false "Window end (YYYY-MM-DD), defaults to today"
// @Param host_filter query string false "Host mosque id or all"
// @Param visiting_filter query string false "Visiting mosque id or all"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	query, err := visit.ParseQuery(r, handler.service)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid dashboard query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Dashboard(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("dashboard.total", res.Total)

	response.WithJSON(w, http.StatusOK, res)
}
