package visit

import (
	"jamat/infras/otel"
	"jamat/internal/domains/visit/model/dto"
	"jamat/internal/domains/visit/service"
	"jamat/shared"
	"jamat/shared/constant"
	"jamat/shared/validator"
	"jamat/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Visit
	otel    otel.Otel
}

func New(service service.Visit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visits", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterVisit)
		routerGroup.Get("/", handler.GetVisits)
		routerGroup.Get("/{id}", handler.GetVisitByID)
	})
}

// RegisterVisit records a visit hosted by a mosque.
// @Summary Register a visit
// @Description Record a visit from another mosque or an external group. Exactly one visitor id must be set.
// @Description An overlapping visit for the same host does not fail the request; the response carries a warning instead.
// @Tags Visit
// @Accept json
// @Produce json
// @Param request body dto.RegisterVisitRequest true "Visit"
// @Success 201 {object} response.Data[dto.RegisterVisitResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits [post]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) RegisterVisit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterVisit")
	defer scope.End()

	req := dto.RegisterVisitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register visit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visit registered by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetVisits lists visits in a window.
// @Summary List visits
// @Description Visits whose start date falls inside the window, bounds included. Use "all" or omit a filter to disable it.
// @Tags Visit
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD), defaults to the reporting epoch"
// @Param end_date query string false "Window end (YYYY-MM-DD), defaults to today"
// @Param host_filter query string false "Host mosque id or all"
// @Param visiting_filter query string false "Visiting mosque id or all"
// @Param sort_dir query string false "ASC or DESC"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetVisitsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetVisits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisits")
	defer scope.End()

	query, err := ParseQuery(r, handler.service)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid visit query")

		response.WithError(w, err)

		return
	}

	visits, err := handler.service.Query(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visits")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visits)
}

// GetVisitByID returns one visit with names resolved.
// @Summary Get a visit
// @Tags Visit
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Data[dto.VisitRowResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/{id} [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetVisitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	visit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get visit")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, visit)
}

// Windower resolves raw query parameters into a visit query.
type Windower interface {
	Window(req dto.VisitQueryRequest) (dto.VisitQuery, error)
}

// ParseQuery reads the window and filters from the query string.
func ParseQuery(r *http.Request, windower Windower) (dto.VisitQuery, error) {
	req := dto.VisitQueryRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		return dto.VisitQuery{}, err //nolint:wrapcheck
	}

	return windower.Window(req) //nolint:wrapcheck
}
