package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Mosque=MockMosqueService

import (
	"context"
	"fmt"
	"jamat/infras/otel"
	"jamat/internal/domains/mosque/model"
	"jamat/internal/domains/mosque/model/dto"
	"jamat/internal/domains/mosque/repository"
	visitModel "jamat/internal/domains/visit/model"
	visitDto "jamat/internal/domains/visit/model/dto"
	visitRepo "jamat/internal/domains/visit/repository"
	"jamat/shared"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/shared/failure"
	"jamat/shared/validator"

	"github.com/rs/zerolog/log"
)

type Mosque interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetMosquesResponse, error)
	Get(ctx context.Context, id int64) (dto.MosqueDetailResponse, error)
	Import(ctx context.Context, rows []dto.ImportMosque) (int, error)
}

type serviceImpl struct {
	repo      repository.Mosque
	visitRepo visitRepo.Visit
	otel      otel.Otel
}

func New(repo repository.Mosque, visitRepo visitRepo.Visit, otel otel.Otel) Mosque {
	return &serviceImpl{
		repo:      repo,
		visitRepo: visitRepo,
		otel:      otel,
	}
}

// List orders mosques by name. A zero limit returns every mosque.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetMosquesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMosques")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.FieldName
	params.SortDir = gDto.SortDirAsc

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count mosques")

		return res, fmt.Errorf("failed to count mosques: %w", err)
	}

	mosques, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get mosques")

		return res, fmt.Errorf("failed to get mosques: %w", err)
	}

	limit := params.Limit
	if limit == 0 {
		limit = total
	}

	res.FromModels(mosques, total, limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.MosqueDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMosque")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mosque, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get mosque")

		return res, fmt.Errorf("failed to get mosque: %w", err)
	}

	if mosque.ID == 0 {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	hosted := shared.FilterByID(id, visitModel.FieldHostMosqueID, visitModel.TableName)
	params := gDto.QueryParams{
		SortBy:  visitModel.TableName + "." + visitModel.FieldStartDate,
		SortDir: gDto.SortDirAsc,
	}

	visits, err := s.visitRepo.GetRows(ctx, params, hosted)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get hosted visits")

		return res, fmt.Errorf("failed to get hosted visits: %w", err)
	}

	res.Mosque.FromModel(mosque)
	res.HostedVisits = visitDto.FromRows(visits)

	return res, nil
}

// Import stores seed rows in one transaction and returns how many were written.
func (s *serviceImpl) Import(ctx context.Context, rows []dto.ImportMosque) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportMosques")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	mosques := make([]model.Mosque, 0, len(rows))
	for i, row := range rows {
		if err = validator.ValidateStruct(&row); err != nil {
			return 0, failure.BadRequestFromString(fmt.Sprintf("row %d: %v", i+1, err)) //nolint:wrapcheck
		}

		mosques = append(mosques, row.ToModel(actor))
	}

	if err = s.repo.InsertBatch(ctx, mosques); err != nil {
		log.Error().Err(err).Int("rows", len(mosques)).Msg("failed to import mosques")

		return 0, fmt.Errorf("failed to import mosques: %w", err)
	}

	log.Info().Int("rows", len(mosques)).Msg("mosques imported")

	return len(mosques), nil
}
