package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jamat/infras/database"
	"jamat/infras/otel"
	"jamat/shared/constant"
	"jamat/shared/dto"
	"jamat/shared/logger"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
	errNoReturnedID   = errors.New("insert returned no id")
)

// Repository reads and appends rows of T. Reads go to the read pool, writes to the write pool
// or the caller's transaction.
type Repository[T any] struct {
	db     *database.Connection
	otel   otel.Otel
	entity string
	schema schema
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db *database.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:     db,
		otel:   otl,
		entity: entityName,
		schema: schemaOf[T](tableName, primaryColumn),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

// prepared runs fn against a named statement on the read pool and records failures on the span.
func (repo *Repository[T]) prepared(ctx context.Context, op, query string, fn func(*sqlx.NamedStmt) error) (err error) {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	defer func() {
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)
		}
	}()

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s query (%s): %w", op, repo.entity, err)
	}
	defer stmt.Close()

	if err = fn(stmt); err != nil {
		return fmt.Errorf("failed to %s (%s): %w", op, repo.entity, err)
	}

	return nil
}

// InsertReturning inserts one row and returns its generated primary key.
func (repo *Repository[T]) InsertReturning(ctx context.Context, row T) (int64, error) {
	return repo.insertReturning(ctx, repo.db.Write, row)
}

func (repo *Repository[T]) InsertReturningTx(ctx context.Context, tx *sqlx.Tx, row T) (int64, error) {
	return repo.insertReturning(ctx, tx, row)
}

func (repo *Repository[T]) insertReturning(ctx context.Context, exec sqlx.ExtContext, row T) (id int64, err error) {
	ctx, scope := repo.scope(ctx, "insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("%s RETURNING %s", repo.schema.insertStatement(), repo.schema.primary)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, exec, query, row)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err == nil {
			err = errNoReturnedID
		}

		return 0, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	if err = rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to scan inserted id (%s): %w", repo.entity, err)
	}

	return id, nil
}

// InsertBulkTx writes rows with one multi-row INSERT inside tx.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, tx *sqlx.Tx, rows []T) (err error) {
	if len(rows) == 0 {
		return nil
	}

	ctx, scope := repo.scope(ctx, "insertBulk")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := repo.schema.insertStatement()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	scope.SetAttribute("rows", len(rows))

	if _, err = tx.NamedExecContext(ctx, query, rows); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.schema.table, where)

	err := repo.prepared(ctx, "check exist", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args) //nolint:wrapcheck
	})

	return exist, err
}

// Get returns the first matching row, or the zero value when none matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	var row T

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s", repo.schema.selectList(columns...), repo.schema.from(), where)

	err := repo.prepared(ctx, "get", query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &row, args); !errors.Is(err, sql.ErrNoRows) {
			return err //nolint:wrapcheck
		}

		return nil
	})

	return row, err
}

// GetAll orders by params.SortBy and then the primary key in the same direction, so pages are stable.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s",
		repo.schema.selectList(columns...), repo.schema.from(), where, repo.ordering(params), paginate(params, args))

	var rows []T

	err := repo.prepared(ctx, "get all", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &rows, args) //nolint:wrapcheck
	})

	return rows, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.schema.table, repo.schema.primary, repo.schema.from(), where)

	var count int

	err := repo.prepared(ctx, "count", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args) //nolint:wrapcheck
	})

	return count, err
}

// BuildWhereClause renders filter with a leading WHERE, or nothing when the filter is empty.
func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

func (repo *Repository[T]) ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s, %s.%s %s",
		params.SortBy, params.SortDir, repo.schema.table, repo.schema.primary, params.SortDir)
}

func paginate(params dto.QueryParams, args map[string]any) string {
	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		return "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit

		return "LIMIT :limit"
	default:
		return ""
	}
}
