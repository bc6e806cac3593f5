package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jamat/infras/database"
	"jamat/infras/otel"
	"jamat/internal/domains/visit/model"
	"jamat/shared"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/shared/logger"
	gRepo "jamat/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Visit interface {
	InsertVisits(ctx context.Context, visits []model.Visit) ([]int64, error)
	Overlapping(ctx context.Context, hostMosqueID int64, period model.Period) ([]int64, error)
	GetRow(ctx context.Context, id int64) (model.VisitRow, error)
	GetRows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VisitRow, error)
	CountRows(ctx context.Context, filter gDto.FilterGroup) (int, error)
	VisitingMosques(ctx context.Context, filter gDto.FilterGroup) ([]model.MosqueOption, error)
}

type repositoryImpl struct {
	visits gRepo.Repository[model.Visit]
	rows   gRepo.Repository[model.VisitRow]
	db     *database.Connection
	otel   otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Visit {
	return &repositoryImpl{
		visits: gRepo.NewRepository[model.Visit](model.EntityName, model.TableName, model.FieldID, db, otel),
		rows:   gRepo.NewRepository[model.VisitRow](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

// InsertVisits writes all visits in one transaction and returns their ids in input order.
func (r *repositoryImpl) InsertVisits(ctx context.Context, visits []model.Visit) (ids []int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visit.InsertVisits")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("visit.count", len(visits))

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		ids = make([]int64, 0, len(visits))

		for _, visit := range visits {
			id, err := r.visits.InsertReturningTx(ctx, tx, visit)
			if err != nil {
				return err //nolint:wrapcheck
			}

			ids = append(ids, id)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert visits: %w", err)
	}

	return ids, nil
}

// Overlapping returns the ids of the host's visits that share at least one day with period.
func (r *repositoryImpl) Overlapping(ctx context.Context, hostMosqueID int64, period model.Period) (ids []int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visit.Overlapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Filter{Field: model.FieldHostMosqueID, Value: hostMosqueID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "period_end", Field: model.FieldStartDate, Value: period.End, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		gDto.Filter{ArgName: "period_start", Field: model.FieldEndDate, Value: period.Start, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
	)

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartDate, SortDir: gDto.SortDirAsc}

	visits, err := r.visits.GetAll(ctx, params, filter, model.FieldID)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping visits: %w", err)
	}

	ids = make([]int64, len(visits))
	for i, visit := range visits {
		ids[i] = visit.ID
	}

	return ids, nil
}

// GetRow returns the zero row when id does not exist.
func (r *repositoryImpl) GetRow(ctx context.Context, id int64) (model.VisitRow, error) {
	row, err := r.rows.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return row, fmt.Errorf("failed to get visit: %w", err)
	}

	return row, nil
}

func (r *repositoryImpl) GetRows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VisitRow, error) {
	rows, err := r.rows.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get visits: %w", err)
	}

	return rows, nil
}

func (r *repositoryImpl) CountRows(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	count, err := r.rows.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}

	return count, nil
}

// VisitingMosques lists the distinct visiting mosques of the visits matched by filter, by name.
func (r *repositoryImpl) VisitingMosques(ctx context.Context, filter gDto.FilterGroup) (options []model.MosqueOption, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visit.VisitingMosques")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := r.rows.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(
		"SELECT DISTINCT visiting.id AS id, visiting.name AS name FROM %s JOIN mosques visiting ON visiting.id = %s.%s %s ORDER BY visiting.name, visiting.id",
		model.TableName, model.TableName, model.FieldVisitingMosqueID, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare visiting mosques query: %w", err)
	}
	defer prepare.Close()

	options = []model.MosqueOption{}
	if err = prepare.SelectContext(ctx, &options, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get visiting mosques: %w", err)
	}

	return options, nil
}
