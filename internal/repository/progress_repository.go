package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// ProgressRepository handles per-topic learner progress data access.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

// UpsertBatch accumulates a batch of progress deltas in one round trip.
// Written by the progress worker after submissions.
func (r *ProgressRepository) UpsertBatch(ctx context.Context, deltas []model.TopicProgress) error {
	if len(deltas) == 0 {
		return nil
	}
	userIDs := make([]int, len(deltas))
	topicIDs := make([]uuid.UUID, len(deltas))
	attempted := make([]int, len(deltas))
	correct := make([]int, len(deltas))
	for i, d := range deltas {
		userIDs[i] = d.UserID
		topicIDs[i] = d.TopicID
		attempted[i] = d.QuestionsAttempted
		correct[i] = d.QuestionsCorrect
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_topic_progress (user_id, topic_id, questions_attempted, questions_correct)
		 SELECT * FROM UNNEST($1::int[], $2::uuid[], $3::int[], $4::int[])
		 ON CONFLICT (user_id, topic_id) DO UPDATE SET
		        questions_attempted = user_topic_progress.questions_attempted + EXCLUDED.questions_attempted,
		        questions_correct = user_topic_progress.questions_correct + EXCLUDED.questions_correct,
		        updated_at = NOW()`,
		userIDs, topicIDs, attempted, correct)
	return err
}

// GetByUser retrieves a learner's progress across all topics they have
// attempted, with topic names resolved.
func (r *ProgressRepository) GetByUser(ctx context.Context, userID int) ([]model.TopicProgress, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.user_id, p.topic_id, t.name, p.questions_attempted, p.questions_correct, p.updated_at
		 FROM user_topic_progress p
		 JOIN topics t ON p.topic_id = t.id
		 WHERE p.user_id = $1
		 ORDER BY t.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []model.TopicProgress
	for rows.Next() {
		var p model.TopicProgress
		if err := rows.Scan(&p.UserID, &p.TopicID, &p.TopicName, &p.QuestionsAttempted,
			&p.QuestionsCorrect, &p.UpdatedAt); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
