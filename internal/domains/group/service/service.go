package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Group=MockGroupService

import (
	"context"
	"fmt"
	"jamat/infras/otel"
	"jamat/internal/domains/group/model"
	"jamat/internal/domains/group/model/dto"
	"jamat/internal/domains/group/repository"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/shared/failure"
	"jamat/shared/validator"

	"github.com/rs/zerolog/log"
)

type Group interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetGroupsResponse, error)
	Import(ctx context.Context, rows []dto.ImportGroup) (int, error)
}

type serviceImpl struct {
	repo repository.Group
	otel otel.Otel
}

func New(repo repository.Group, otel otel.Otel) Group {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// List orders groups by name. A zero limit returns every group.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetGroupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListGroups")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.FieldName
	params.SortDir = gDto.SortDirAsc

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count groups")

		return res, fmt.Errorf("failed to count groups: %w", err)
	}

	groups, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get groups")

		return res, fmt.Errorf("failed to get groups: %w", err)
	}

	limit := params.Limit
	if limit == 0 {
		limit = total
	}

	res.FromModels(groups, total, limit)

	return res, nil
}

// Import stores seed rows in one transaction and returns how many were written.
func (s *serviceImpl) Import(ctx context.Context, rows []dto.ImportGroup) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportGroups")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	groups := make([]model.Group, 0, len(rows))
	for i, row := range rows {
		if err = validator.ValidateStruct(&row); err != nil {
			return 0, failure.BadRequestFromString(fmt.Sprintf("row %d: %v", i+1, err)) //nolint:wrapcheck
		}

		groups = append(groups, row.ToModel(actor))
	}

	if err = s.repo.InsertBatch(ctx, groups); err != nil {
		log.Error().Err(err).Int("rows", len(groups)).Msg("failed to import groups")

		return 0, fmt.Errorf("failed to import groups: %w", err)
	}

	log.Info().Int("rows", len(groups)).Msg("groups imported")

	return len(groups), nil
}
