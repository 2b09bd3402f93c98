package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Question lifecycle errors.
var (
	ErrQuestionNotDraft = errors.New("only draft questions can be edited or deleted")
	ErrBadStatusChange  = errors.New("invalid question status transition")
	ErrOptionsInvalid   = errors.New("invalid options")
)

// QuestionService handles question bank business logic. Lifecycle rules:
// drafts are editable, publishing freezes content, archived questions leave
// the draw pool but keep their history.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	topicRepo    *repository.TopicRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, topicRepo *repository.TopicRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// ListByTopic retrieves a topic's questions for the back office.
func (s *QuestionService) ListByTopic(ctx context.Context, topicID uuid.UUID, status, search string, page, perPage int) ([]model.Question, int, error) {
	return s.questionRepo.ListByTopic(ctx, topicID, status, search, perPage, (page-1)*perPage)
}

// GetByID retrieves a single question with grading fields.
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Create adds a draft question to a topic.
func (s *QuestionService) Create(ctx context.Context, topicID uuid.UUID, req *model.CreateQuestionRequest) (*model.Question, error) {
	if fields := model.ValidateOptions(req.Options, req.CorrectOption); fields != nil {
		return nil, ErrOptionsInvalid
	}
	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}

	q := &model.Question{
		TopicID:       topicID,
		PassageID:     req.PassageID,
		Prompt:        req.Prompt,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Explanation:   req.Explanation,
		Hint:          req.Hint,
		Difficulty:    model.Difficulty(req.Difficulty),
		ExamBoard:     req.ExamBoard,
		ExamYear:      req.ExamYear,
	}
	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Update edits a question. Only drafts can change; published content is
// frozen so past session grading stays reproducible.
func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateQuestionRequest) (*model.Question, error) {
	if fields := model.ValidateOptions(req.Options, req.CorrectOption); fields != nil {
		return nil, ErrOptionsInvalid
	}

	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status != model.QuestionStatusDraft {
		return nil, ErrQuestionNotDraft
	}

	q.PassageID = req.PassageID
	q.Prompt = req.Prompt
	q.Options = req.Options
	q.CorrectOption = req.CorrectOption
	q.Explanation = req.Explanation
	q.Hint = req.Hint
	q.Difficulty = model.Difficulty(req.Difficulty)
	q.ExamBoard = req.ExamBoard
	q.ExamYear = req.ExamYear

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Publish moves a draft into the learner draw pool. Archived questions may
// also be republished.
func (s *QuestionService) Publish(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.transition(ctx, id, model.QuestionStatusPublished,
		model.QuestionStatusDraft, model.QuestionStatusArchived)
}

// Archive removes a published question from the draw pool without losing
// its answer history.
func (s *QuestionService) Archive(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.transition(ctx, id, model.QuestionStatusArchived, model.QuestionStatusPublished)
}

func (s *QuestionService) transition(ctx context.Context, id uuid.UUID, to model.QuestionStatus, from ...model.QuestionStatus) (*model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if q.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrBadStatusChange
	}

	if err := s.questionRepo.SetStatus(ctx, id, to); err != nil {
		return nil, err
	}
	q.Status = to
	return q, nil
}

// Delete removes a question. Only drafts can be deleted; anything that may
// have been served to learners must be archived instead.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.Status != model.QuestionStatusDraft {
		return ErrQuestionNotDraft
	}
	return s.questionRepo.Delete(ctx, id)
}
