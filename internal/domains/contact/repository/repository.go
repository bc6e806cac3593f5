package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"jamat/infras/database"
	"jamat/infras/otel"
	"jamat/internal/domains/contact/model"
	gRepo "jamat/shared/repository"
)

type Contact interface {
	InsertReturning(ctx context.Context, message model.ContactMessage) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactMessage]
}

func New(db *database.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
