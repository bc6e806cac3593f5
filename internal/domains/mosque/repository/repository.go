package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jamat/infras/database"
	"jamat/infras/otel"
	"jamat/internal/domains/mosque/model"
	gDto "jamat/shared/dto"
	gRepo "jamat/shared/repository"

	"github.com/jmoiron/sqlx"
)

// insertChunkSize bounds the bind parameters of one multi-row INSERT.
const insertChunkSize = 100

type Mosque interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Mosque, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Mosque, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertBatch(ctx context.Context, mosques []model.Mosque) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Mosque]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Mosque {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Mosque](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertBatch writes every mosque in one transaction.
func (r *repositoryImpl) InsertBatch(ctx context.Context, mosques []model.Mosque) error {
	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for start := 0; start < len(mosques); start += insertChunkSize {
			end := min(start+insertChunkSize, len(mosques))

			if err := r.InsertBulkTx(ctx, tx, mosques[start:end]); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert mosques: %w", err)
	}

	return nil
}
