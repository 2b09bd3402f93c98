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

const sessionColumns = `id, user_id, guest_id, subject_id, topic_ids, mode,
	total_questions, questions_answered, questions_correct, distribution,
	duration_minutes, score, time_spent_secs, status, started_at, completed_at`

// SessionRepository handles learning session data access.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func scanSession(row pgx.Row) (*model.LearningSession, error) {
	s := &model.LearningSession{}
	var distribution []byte
	if err := row.Scan(&s.ID, &s.UserID, &s.GuestID, &s.SubjectID, &s.TopicIDs, &s.Mode,
		&s.TotalQuestions, &s.QuestionsAnswered, &s.QuestionsCorrect, &distribution,
		&s.DurationMinutes, &s.Score, &s.TimeSpentSecs, &s.Status,
		&s.StartedAt, &s.CompletedAt); err != nil {
		return nil, err
	}
	if len(distribution) > 0 {
		if err := json.Unmarshal(distribution, &s.Distribution); err != nil {
			return nil, fmt.Errorf("decode distribution for session %s: %w", s.ID, err)
		}
	}
	return s, nil
}

// Create inserts a new in-progress session.
func (r *SessionRepository) Create(ctx context.Context, s *model.LearningSession) error {
	var distribution []byte
	if s.Distribution != nil {
		var err error
		distribution, err = json.Marshal(s.Distribution)
		if err != nil {
			return fmt.Errorf("encode distribution: %w", err)
		}
	}
	s.Status = model.SessionStatusInProgress
	return r.pool.QueryRow(ctx,
		`INSERT INTO learning_sessions (user_id, guest_id, subject_id, topic_ids, mode,
		        total_questions, distribution, duration_minutes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, started_at`,
		s.UserID, s.GuestID, s.SubjectID, s.TopicIDs, s.Mode,
		s.TotalQuestions, distribution, s.DurationMinutes, s.Status,
	).Scan(&s.ID, &s.StartedAt)
}

// GetByID retrieves a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LearningSession, error) {
	return scanSession(r.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM learning_sessions WHERE id = $1`, id))
}

// ListByUser retrieves a user's sessions, newest first.
func (r *SessionRepository) ListByUser(ctx context.Context, userID int, limit, offset int) ([]model.LearningSession, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM learning_sessions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+sessionColumns+`
		 FROM learning_sessions
		 WHERE user_id = $1
		 ORDER BY started_at DESC
		 LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []model.LearningSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, total, rows.Err()
}

// SetStatus moves a session between in_progress and paused.
func (r *SessionRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE learning_sessions SET status = $1 WHERE id = $2`, status, id)
	return err
}

// Complete finalizes a session with its score and counters.
func (r *SessionRepository) Complete(ctx context.Context, id uuid.UUID, answered, correct int, score float64, timeSpentSecs int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE learning_sessions
		 SET status = 'completed', questions_answered = $1, questions_correct = $2,
		     score = $3, time_spent_secs = $4, completed_at = NOW()
		 WHERE id = $5`,
		answered, correct, score, timeSpentSecs, id)
	return err
}

// Abandon marks a session abandoned, keeping whatever counters it had.
func (r *SessionRepository) Abandon(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE learning_sessions
		 SET status = 'abandoned', completed_at = NOW()
		 WHERE id = $1`, id)
	return err
}

// UpdateCounts refreshes the running answered/correct counters. Used by
// practice mode where grading happens per answer.
func (r *SessionRepository) UpdateCounts(ctx context.Context, id uuid.UUID, answered, correct int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE learning_sessions
		 SET questions_answered = $1, questions_correct = $2
		 WHERE id = $3`, answered, correct, id)
	return err
}

// SaveOrder persists a session's question order durably. Replaces any
// previous order for the session.
func (r *SessionRepository) SaveOrder(ctx context.Context, sessionID uuid.UUID, questionIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM learning_session_questions WHERE session_id = $1`, sessionID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO learning_session_questions (session_id, question_id, position)
		 SELECT $1, id, ord
		 FROM unnest($2::uuid[]) WITH ORDINALITY AS o(id, ord)`,
		sessionID, questionIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetOrder returns the stored question order, or nil when none exists.
func (r *SessionRepository) GetOrder(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT question_id
		 FROM learning_session_questions
		 WHERE session_id = $1
		 ORDER BY position`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UserStats aggregates a user's completed session history for the dashboard.
func (r *SessionRepository) UserStats(ctx context.Context, userID int) (sessions int, answered int, correct int, avgScore float64, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(questions_answered), 0),
		        COALESCE(SUM(questions_correct), 0),
		        COALESCE(AVG(score), 0)
		 FROM learning_sessions
		 WHERE user_id = $1 AND status = 'completed'`, userID).
		Scan(&sessions, &answered, &correct, &avgScore)
	return
}
