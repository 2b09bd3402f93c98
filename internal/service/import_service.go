package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Import errors.
var (
	ErrImportEmpty     = errors.New("import file has no data rows")
	ErrImportBadHeader = errors.New("import file header does not match the template")
)

// importHeader is the expected CSV column layout, matching the downloadable
// template.
var importHeader = []string{
	"prompt", "option_a", "option_b", "option_c", "option_d", "option_e",
	"correct_option", "explanation", "hint", "difficulty", "exam_board", "exam_year",
}

// ImportService handles bulk CSV question imports into a topic. Rows are
// validated up front; a dry run reports without writing, a real run imports
// the valid rows as drafts and reports the rejects.
type ImportService struct {
	questionRepo *repository.QuestionRepository
	topicRepo    *repository.TopicRepository
	log          zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(questionRepo *repository.QuestionRepository, topicRepo *repository.TopicRepository, log zerolog.Logger) *ImportService {
	return &ImportService{
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
		log:          log.With().Str("component", "import_service").Logger(),
	}
}

// Template returns the CSV template content admins download to fill in.
func (s *ImportService) Template() string {
	return strings.Join(importHeader, ",") + "\n"
}

// Import parses the CSV stream and imports it into the topic. With dryRun
// set, nothing is written and the report shows what would happen.
func (s *ImportService) Import(ctx context.Context, topicID uuid.UUID, r io.Reader, dryRun bool) (*model.ImportReport, error) {
	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}

	questions, rowErrors, err := ParseQuestionCSV(r, topicID)
	if err != nil {
		return nil, err
	}

	report := &model.ImportReport{
		DryRun:    dryRun,
		TotalRows: len(questions) + len(rowErrors),
		ValidRows: len(questions),
		Errors:    rowErrors,
	}

	if dryRun || len(questions) == 0 {
		return report, nil
	}

	imported, err := s.questionRepo.BulkInsert(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("bulk insert: %w", err)
	}
	report.Imported = imported

	s.log.Info().
		Str("topic_id", topicID.String()).
		Int("imported", imported).
		Int("rejected", len(rowErrors)).
		Msg("Question import completed")
	return report, nil
}

// ParseQuestionCSV reads and validates a question CSV. It returns the valid
// rows ready for insertion and per-row validation errors; a non-nil error
// means the file itself is unusable.
func ParseQuestionCSV(r io.Reader, topicID uuid.UUID) ([]model.Question, []model.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrImportEmpty
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(header) {
		return nil, nil, ErrImportBadHeader
	}

	var questions []model.Question
	var rowErrors []model.ImportRowError
	row := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			rowErrors = append(rowErrors, model.ImportRowError{
				Row: row, Field: "", Message: "malformed CSV row",
			})
			continue
		}

		q, errs := parseRow(record, row, topicID)
		if len(errs) > 0 {
			rowErrors = append(rowErrors, errs...)
			continue
		}
		questions = append(questions, *q)
	}

	if row == 1 {
		return nil, nil, ErrImportEmpty
	}
	return questions, rowErrors, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(importHeader) {
		return false
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != importHeader[i] {
			return false
		}
	}
	return true
}

func parseRow(record []string, row int, topicID uuid.UUID) (*model.Question, []model.ImportRowError) {
	get := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var errs []model.ImportRowError
	fail := func(field, message string) {
		errs = append(errs, model.ImportRowError{Row: row, Field: field, Message: message})
	}

	prompt := get(0)
	if prompt == "" {
		fail("prompt", "prompt is required")
	}

	options := make(map[string]string)
	for i, letter := range model.OptionLetters {
		if text := get(1 + i); text != "" {
			options[letter] = text
		}
	}
	correct := strings.ToUpper(get(6))
	if fields := model.ValidateOptions(options, correct); fields != nil {
		for field, message := range fields {
			fail(field, message)
		}
	}

	difficulty := model.Difficulty(strings.ToLower(get(9)))
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	case "":
		difficulty = model.DifficultyMedium
	default:
		fail("difficulty", "difficulty must be easy, medium or hard")
	}

	var examYear *int
	if raw := get(11); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1970 || year > 2100 {
			fail("exam_year", "exam year must be a year between 1970 and 2100")
		} else {
			examYear = &year
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.Question{
		TopicID:       topicID,
		Prompt:        prompt,
		Options:       options,
		CorrectOption: correct,
		Explanation:   get(7),
		Hint:          get(8),
		Difficulty:    difficulty,
		ExamBoard:     strings.ToUpper(get(10)),
		ExamYear:      examYear,
		Status:        model.QuestionStatusDraft,
	}, nil
}
