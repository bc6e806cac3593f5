package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"
	"jamat/infras/otel"
	"jamat/internal/domains/dashboard/model"
	"jamat/internal/domains/dashboard/model/dto"
	mosqueModel "jamat/internal/domains/mosque/model"
	mosqueRepo "jamat/internal/domains/mosque/repository"
	visitModel "jamat/internal/domains/visit/model"
	visitDto "jamat/internal/domains/visit/model/dto"
	visitRepo "jamat/internal/domains/visit/repository"
	visitService "jamat/internal/domains/visit/service"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Dashboard(ctx context.Context, query visitDto.VisitQuery) (dto.DashboardResponse, error)
	Window(req visitDto.VisitQueryRequest) (visitDto.VisitQuery, error)
}

type serviceImpl struct {
	visits     visitService.Visit
	visitRepo  visitRepo.Visit
	mosqueRepo mosqueRepo.Mosque
	otel       otel.Otel
}

func New(visits visitService.Visit, visitRepo visitRepo.Visit, mosqueRepo mosqueRepo.Mosque, otel otel.Otel) Dashboard {
	return &serviceImpl{
		visits:     visits,
		visitRepo:  visitRepo,
		mosqueRepo: mosqueRepo,
		otel:       otel,
	}
}

func (s *serviceImpl) Window(req visitDto.VisitQueryRequest) (visitDto.VisitQuery, error) {
	return s.visits.Window(req) //nolint:wrapcheck
}

// Dashboard lists every visit in the window and summarises it. Paging is ignored so the counts cover the whole window.
func (s *serviceImpl) Dashboard(ctx context.Context, query visitDto.VisitQuery) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query.Page = 0
	query.Limit = 0

	visits, err := s.visits.Query(ctx, query)
	if err != nil {
		return res, fmt.Errorf("failed to query dashboard visits: %w", err)
	}

	// options depend on the date window only
	windowOnly := visitDto.VisitQuery{Window: query.Window}

	visiting, err := s.visitRepo.VisitingMosques(ctx, windowOnly.Filter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get visiting mosque options")

		return res, fmt.Errorf("failed to get visiting mosque options: %w", err)
	}

	mosques, err := s.mosqueRepo.GetAll(ctx, gDto.QueryParams{SortBy: mosqueModel.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}, mosqueModel.FieldID, mosqueModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get host mosque options")

		return res, fmt.Errorf("failed to get host mosque options: %w", err)
	}

	hosts := make([]visitModel.MosqueOption, len(mosques))
	for i, mosque := range mosques {
		hosts[i] = visitModel.MosqueOption{ID: mosque.ID, Name: mosque.Name}
	}

	res.Filters.FromQuery(query)
	res.Visits = visits.Visits
	res.FromSummary(model.Aggregate(visits.Visits))
	res.HostOptions = dto.FromOptions(hosts)
	res.VisitingOptions = dto.FromOptions(visiting)

	scope.SetAttribute("dashboard.total", res.Total)

	return res, nil
}
