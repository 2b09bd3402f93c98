package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// AnswerRepository handles session answer data access.
type AnswerRepository struct {
	pool *pgxpool.Pool
}

// NewAnswerRepository creates a new AnswerRepository.
func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

// Upsert records an answer, replacing any earlier choice for the same
// question. The session+question unique constraint makes retries safe.
func (r *AnswerRepository) Upsert(ctx context.Context, a *model.SessionAnswer) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO session_answers (session_id, question_id, selected_option,
		        is_correct, time_spent_secs, hint_used, solution_viewed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (session_id, question_id) DO UPDATE SET
		        selected_option = EXCLUDED.selected_option,
		        is_correct = EXCLUDED.is_correct,
		        time_spent_secs = EXCLUDED.time_spent_secs,
		        hint_used = EXCLUDED.hint_used,
		        solution_viewed = EXCLUDED.solution_viewed
		 RETURNING id, created_at`,
		a.SessionID, a.QuestionID, a.SelectedOption,
		a.IsCorrect, a.TimeSpentSecs, a.HintUsed, a.SolutionViewed,
	).Scan(&a.ID, &a.CreatedAt)
}

// UpsertBatch writes a batch of answers in one round trip via UNNEST.
// Used by submission, which records the whole paper at once.
func (r *AnswerRepository) UpsertBatch(ctx context.Context, answers []model.SessionAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	sessionIDs := make([]uuid.UUID, len(answers))
	questionIDs := make([]uuid.UUID, len(answers))
	options := make([]string, len(answers))
	correct := make([]bool, len(answers))
	timeSpent := make([]int, len(answers))
	hints := make([]bool, len(answers))
	solutions := make([]bool, len(answers))
	for i, a := range answers {
		sessionIDs[i] = a.SessionID
		questionIDs[i] = a.QuestionID
		options[i] = a.SelectedOption
		correct[i] = a.IsCorrect
		timeSpent[i] = a.TimeSpentSecs
		hints[i] = a.HintUsed
		solutions[i] = a.SolutionViewed
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO session_answers (session_id, question_id, selected_option,
		        is_correct, time_spent_secs, hint_used, solution_viewed)
		 SELECT * FROM UNNEST($1::uuid[], $2::uuid[], $3::text[], $4::bool[],
		        $5::int[], $6::bool[], $7::bool[])
		 ON CONFLICT (session_id, question_id) DO UPDATE SET
		        selected_option = EXCLUDED.selected_option,
		        is_correct = EXCLUDED.is_correct,
		        time_spent_secs = EXCLUDED.time_spent_secs,
		        hint_used = EXCLUDED.hint_used,
		        solution_viewed = EXCLUDED.solution_viewed`,
		sessionIDs, questionIDs, options, correct, timeSpent, hints, solutions)
	return err
}

// ListBySession retrieves all answers for a session.
func (r *AnswerRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.SessionAnswer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, question_id, selected_option, is_correct,
		        time_spent_secs, hint_used, solution_viewed, created_at
		 FROM session_answers
		 WHERE session_id = $1
		 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []model.SessionAnswer
	for rows.Next() {
		var a model.SessionAnswer
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &a.SelectedOption,
			&a.IsCorrect, &a.TimeSpentSecs, &a.HintUsed, &a.SolutionViewed,
			&a.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
