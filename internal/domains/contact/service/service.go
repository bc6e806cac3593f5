package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Contact=MockContactService

import (
	"context"
	"fmt"
	"jamat/infras/otel"
	"jamat/internal/domains/contact/model/dto"
	"jamat/internal/domains/contact/repository"
	"jamat/shared/constant"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (dto.SubmitContactResponse, error)
}

type serviceImpl struct {
	repo repository.Contact
	otel otel.Otel
}

func New(repo repository.Contact, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitContactRequest) (res dto.SubmitContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.InsertReturning(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return res, fmt.Errorf("failed to store contact message: %w", err)
	}

	log.Info().Int64("id", id).Msg("contact message received")

	res.ID = id
	res.Message = dto.ThankYouMessage

	return res, nil
}
