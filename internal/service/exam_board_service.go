package service

import (
	"context"

	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

type ExamBoardService struct {
	boardRepo *repository.ExamBoardRepository
	log       zerolog.Logger
}

func NewExamBoardService(boardRepo *repository.ExamBoardRepository, log zerolog.Logger) *ExamBoardService {
	return &ExamBoardService{
		boardRepo: boardRepo,
		log:       log.With().Str("component", "exam_board_service").Logger(),
	}
}

func (s *ExamBoardService) GetAll(ctx context.Context) ([]model.ExamBoard, error) {
	return s.boardRepo.GetAll(ctx)
}

func (s *ExamBoardService) Create(ctx context.Context, b *model.ExamBoard) error {
	return s.boardRepo.Create(ctx, b)
}

func (s *ExamBoardService) Update(ctx context.Context, b *model.ExamBoard) error {
	return s.boardRepo.Update(ctx, b)
}

func (s *ExamBoardService) Delete(ctx context.Context, id int) error {
	return s.boardRepo.Delete(ctx, id)
}
