package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

type PassageService struct {
	passageRepo *repository.PassageRepository
	log         zerolog.Logger
}

func NewPassageService(passageRepo *repository.PassageRepository, log zerolog.Logger) *PassageService {
	return &PassageService{
		passageRepo: passageRepo,
		log:         log.With().Str("component", "passage_service").Logger(),
	}
}

func (s *PassageService) List(ctx context.Context, page, perPage int) ([]model.Passage, int, error) {
	return s.passageRepo.List(ctx, perPage, (page-1)*perPage)
}

func (s *PassageService) GetByID(ctx context.Context, id uuid.UUID) (*model.Passage, error) {
	return s.passageRepo.GetByID(ctx, id)
}

func (s *PassageService) Create(ctx context.Context, p *model.Passage) error {
	return s.passageRepo.Create(ctx, p)
}

func (s *PassageService) Update(ctx context.Context, p *model.Passage) error {
	return s.passageRepo.Update(ctx, p)
}

func (s *PassageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.passageRepo.Delete(ctx, id)
}
