package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

const questionColumns = `id, topic_id, passage_id, prompt, options, correct_option,
	explanation, hint, difficulty, exam_board, exam_year, status, created_at, updated_at`

// QuestionRepository handles question bank data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func scanQuestion(row pgx.Row) (*model.Question, error) {
	q := &model.Question{}
	var options []byte
	if err := row.Scan(&q.ID, &q.TopicID, &q.PassageID, &q.Prompt, &options, &q.CorrectOption,
		&q.Explanation, &q.Hint, &q.Difficulty, &q.ExamBoard, &q.ExamYear, &q.Status,
		&q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &q.Options); err != nil {
		return nil, fmt.Errorf("decode options for question %s: %w", q.ID, err)
	}
	return q, nil
}

func collectQuestions(rows pgx.Rows) ([]model.Question, error) {
	defer rows.Close()
	var questions []model.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// Create inserts a new question (draft unless a status is set).
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	if q.Status == "" {
		q.Status = model.QuestionStatusDraft
	}
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (topic_id, passage_id, prompt, options, correct_option,
		        explanation, hint, difficulty, exam_board, exam_year, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		q.TopicID, q.PassageID, q.Prompt, options, q.CorrectOption,
		q.Explanation, q.Hint, q.Difficulty, q.ExamBoard, q.ExamYear, q.Status,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return scanQuestion(r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
}

// ListByTopic retrieves questions for a topic with pagination and optional
// status/search filters.
func (r *QuestionRepository) ListByTopic(ctx context.Context, topicID uuid.UUID, status string, search string, limit, offset int) ([]model.Question, int, error) {
	where := `WHERE topic_id = $1`
	args := []any{topicID}

	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		where += fmt.Sprintf(" AND prompt ILIKE $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM questions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		questionColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	questions, err := collectQuestions(rows)
	return questions, total, err
}

// RandomByTopic draws up to limit published questions from one topic.
func (r *QuestionRepository) RandomByTopic(ctx context.Context, topicID uuid.UUID, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+`
		 FROM questions
		 WHERE topic_id = $1 AND status = 'published'
		 ORDER BY random()
		 LIMIT $2`, topicID, limit)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

// RandomByTopics draws up to limit published questions across several topics.
func (r *QuestionRepository) RandomByTopics(ctx context.Context, topicIDs []uuid.UUID, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+`
		 FROM questions
		 WHERE topic_id = ANY($1) AND status = 'published'
		 ORDER BY random()
		 LIMIT $2`, topicIDs, limit)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

// GetByIDs retrieves questions preserving the order of the input ids.
// Used by the session loader to reconstruct an exact paper.
func (r *QuestionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+`
		 FROM questions
		 JOIN unnest($1::uuid[]) WITH ORDINALITY AS o(id, ord) USING (id)
		 ORDER BY o.ord`, ids)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

// CountPublishedByTopic returns the published inventory of a topic.
func (r *QuestionRepository) CountPublishedByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM questions WHERE topic_id = $1 AND status = 'published'`, topicID).Scan(&n)
	return n, err
}

// Update modifies a question in place.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE questions
		 SET passage_id = $1, prompt = $2, options = $3, correct_option = $4,
		     explanation = $5, hint = $6, difficulty = $7, exam_board = $8,
		     exam_year = $9, updated_at = NOW()
		 WHERE id = $10`,
		q.PassageID, q.Prompt, options, q.CorrectOption,
		q.Explanation, q.Hint, q.Difficulty, q.ExamBoard, q.ExamYear, q.ID)
	return err
}

// SetStatus transitions a question's lifecycle status.
func (r *QuestionRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.QuestionStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// Delete removes a question by ID.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	return err
}

// BulkInsert creates many questions in one round trip via COPY.
// Used by the CSV importer; all rows are inserted as drafts.
func (r *QuestionRepository) BulkInsert(ctx context.Context, questions []model.Question) (int, error) {
	rows := make([][]any, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		options, err := json.Marshal(q.Options)
		if err != nil {
			return 0, fmt.Errorf("encode options for row %d: %w", i, err)
		}
		rows = append(rows, []any{
			q.TopicID, q.PassageID, q.Prompt, options, q.CorrectOption,
			q.Explanation, q.Hint, q.Difficulty, q.ExamBoard, q.ExamYear,
			string(model.QuestionStatusDraft),
		})
	}

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"questions"},
		[]string{"topic_id", "passage_id", "prompt", "options", "correct_option",
			"explanation", "hint", "difficulty", "exam_board", "exam_year", "status"},
		pgx.CopyFromRows(rows),
	)
	return int(n), err
}
