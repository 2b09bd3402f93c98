package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

type TopicService struct {
	topicRepo *repository.TopicRepository
	log       zerolog.Logger
}

func NewTopicService(topicRepo *repository.TopicRepository, log zerolog.Logger) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
		log:       log.With().Str("component", "topic_service").Logger(),
	}
}

// ListBySubject returns a subject's topics with their published question
// counts, so clients can show availability before session creation.
func (s *TopicService) ListBySubject(ctx context.Context, subjectID int) ([]model.Topic, error) {
	return s.topicRepo.ListBySubject(ctx, subjectID)
}

func (s *TopicService) GetByID(ctx context.Context, id uuid.UUID) (*model.Topic, error) {
	return s.topicRepo.GetByID(ctx, id)
}

func (s *TopicService) Create(ctx context.Context, t *model.Topic) error {
	return s.topicRepo.Create(ctx, t)
}

func (s *TopicService) Update(ctx context.Context, t *model.Topic) error {
	return s.topicRepo.Update(ctx, t)
}

func (s *TopicService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.topicRepo.Delete(ctx, id)
}
