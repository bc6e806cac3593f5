package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Visit=MockVisitService

import (
	"context"
	"errors"
	"fmt"
	"jamat/config"
	"jamat/infras/broker"
	"jamat/infras/otel"
	groupModel "jamat/internal/domains/group/model"
	groupRepo "jamat/internal/domains/group/repository"
	mosqueModel "jamat/internal/domains/mosque/model"
	mosqueRepo "jamat/internal/domains/mosque/repository"
	"jamat/internal/domains/visit/model"
	"jamat/internal/domains/visit/model/dto"
	"jamat/internal/domains/visit/repository"
	"jamat/shared"
	"jamat/shared/constant"
	"jamat/shared/date"
	"jamat/shared/failure"
	gRepo "jamat/shared/repository"
	"strconv"

	"github.com/rs/zerolog/log"
)

var (
	errHostNotFound     = errors.New("host mosque does not exist")
	errVisitingNotFound = errors.New("visiting mosque does not exist")
	errGroupNotFound    = errors.New("visiting group does not exist")
)

type Visit interface {
	Register(ctx context.Context, req dto.RegisterVisitRequest) (dto.RegisterVisitResponse, error)
	Query(ctx context.Context, query dto.VisitQuery) (dto.GetVisitsResponse, error)
	Get(ctx context.Context, id int64) (dto.VisitRowResponse, error)
	// Window resolves raw query parameters against the reporting epoch and today.
	Window(req dto.VisitQueryRequest) (dto.VisitQuery, error)
}

type serviceImpl struct {
	repo        repository.Visit
	mosqueRepo  mosqueRepo.Mosque
	groupRepo   groupRepo.Group
	publisher   broker.Publisher
	cfg         *config.Config
	otel        otel.Otel
	granularity string
	epoch       date.Date
	today       func() date.Date
}

func New(
	repo repository.Visit,
	mosqueRepo mosqueRepo.Mosque,
	groupRepo groupRepo.Group,
	publisher broker.Publisher,
	cfg *config.Config,
	otel otel.Otel,
	today func() date.Date,
) Visit {
	granularity := cfg.App.VisitGranularity
	if granularity != config.GranularityRange && granularity != config.GranularityDaily {
		log.Warn().Str("granularity", granularity).Msg("unknown visit granularity, storing one row per visit")

		granularity = config.GranularityRange
	}

	epoch, err := date.Parse(cfg.App.Reporting.Epoch)
	if err != nil {
		log.Warn().Err(err).Msg("invalid reporting epoch, using 2025-01-01")

		epoch = date.New(2025, 1, 1)
	}

	return &serviceImpl{
		repo:        repo,
		mosqueRepo:  mosqueRepo,
		groupRepo:   groupRepo,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
		granularity: granularity,
		epoch:       epoch,
		today:       today,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterVisitRequest) (res dto.RegisterVisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	period, err := req.Period()
	if err != nil {
		return res, err
	}

	visitor, err := req.Visitor()
	if err != nil {
		return res, err
	}

	if err = s.checkReferences(ctx, req.HostMosqueID, visitor); err != nil {
		return res, err
	}

	overlapping, err := s.repo.Overlapping(ctx, req.HostMosqueID, period)
	if err != nil {
		log.Error().Err(err).Int64("host_mosque_id", req.HostMosqueID).Msg("failed to check overlapping visits")

		return res, fmt.Errorf("failed to check overlapping visits: %w", err)
	}

	visits := s.expand(req.ToModel(visitor, period, actor))

	ids, err := s.repo.InsertVisits(ctx, visits)
	if err != nil {
		if gRepo.IsForeignKeyViolation(err) || gRepo.IsCheckViolation(err) {
			return res, failure.BadRequestFromString("visit references a mosque or group that does not exist") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register visit")

		return res, fmt.Errorf("failed to register visit: %w", err)
	}

	res.CreatedIDs = ids

	if len(overlapping) > 0 {
		res.Warning = dto.OverlapWarning
		res.OverlappingIDs = overlapping
	}

	scope.SetAttribute("visit.created_ids", ids)

	event := dto.RegisteredEvent{
		VisitIDs:     ids,
		HostMosqueID: req.HostMosqueID,
		Visitor:      visitor,
		StartDate:    period.Start,
		EndDate:      period.End,
		Granularity:  s.granularity,
		Overlap:      len(overlapping) > 0,
		RegisteredBy: actor,
	}

	go s.publish(context.WithoutCancel(ctx), event)

	return res, nil
}

// expand turns one submitted visit into the rows persisted for the configured granularity.
func (s *serviceImpl) expand(visit model.Visit) []model.Visit {
	if s.granularity != config.GranularityDaily {
		return []model.Visit{visit}
	}

	days := visit.Period().Days()
	visits := make([]model.Visit, len(days))

	for i, day := range days {
		visits[i] = visit
		visits[i].StartDate = day
		visits[i].EndDate = day
	}

	return visits
}

func (s *serviceImpl) checkReferences(ctx context.Context, hostID int64, visitor model.Visitor) error {
	exists, err := s.mosqueRepo.Exist(ctx, shared.FilterByID(hostID, mosqueModel.FieldID, mosqueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if host mosque exists")

		return fmt.Errorf("failed to check if host mosque exists: %w", err)
	}

	if !exists {
		return failure.BadRequest(errHostNotFound) //nolint:wrapcheck
	}

	switch visitor.Kind {
	case model.VisitorMosque:
		exists, err = s.mosqueRepo.Exist(ctx, shared.FilterByID(visitor.ID, mosqueModel.FieldID, mosqueModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if visiting mosque exists")

			return fmt.Errorf("failed to check if visiting mosque exists: %w", err)
		}

		if !exists {
			return failure.BadRequest(errVisitingNotFound) //nolint:wrapcheck
		}
	case model.VisitorGroup:
		exists, err = s.groupRepo.Exist(ctx, shared.FilterByID(visitor.ID, groupModel.FieldID, groupModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if visiting group exists")

			return fmt.Errorf("failed to check if visiting group exists: %w", err)
		}

		if !exists {
			return failure.BadRequest(errGroupNotFound) //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, event dto.RegisteredEvent) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".VisitRegistered")
	defer scope.End()

	key := strconv.FormatInt(event.HostMosqueID, 10)

	if err := s.publisher.Publish(ctx, s.cfg.Events.Topic, key, event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Ints64("visit_ids", event.VisitIDs).Msg("failed to publish visit registered event")
	}
}

func (s *serviceImpl) Window(req dto.VisitQueryRequest) (dto.VisitQuery, error) {
	return req.ToQuery(s.epoch, s.today())
}

func (s *serviceImpl) Query(ctx context.Context, query dto.VisitQuery) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Query")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := query.Filter()

	total, err := s.repo.CountRows(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	rows, err := s.repo.GetRows(ctx, query.Params(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	limit := query.Limit
	if limit == 0 {
		limit = total
	}

	res.FromModels(rows, total, limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.VisitRowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get visit")

		return res, fmt.Errorf("failed to get visit: %w", err)
	}

	if row.ID == 0 {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(row)

	return res, nil
}
