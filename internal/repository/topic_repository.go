package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// TopicRepository handles topic data access.
type TopicRepository struct {
	pool *pgxpool.Pool
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

// Create inserts a new topic.
func (r *TopicRepository) Create(ctx context.Context, t *model.Topic) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO topics (subject_id, name, description, position)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.SubjectID, t.Name, t.Description, t.Position,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// GetByID retrieves a topic by ID.
func (r *TopicRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Topic, error) {
	t := &model.Topic{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, subject_id, name, description, position, created_at, updated_at
		 FROM topics WHERE id = $1`, id,
	).Scan(&t.ID, &t.SubjectID, &t.Name, &t.Description, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListBySubject retrieves a subject's topics in syllabus order, each with its
// published question count.
func (r *TopicRepository) ListBySubject(ctx context.Context, subjectID int) ([]model.Topic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.subject_id, t.name, t.description, t.position, t.created_at, t.updated_at,
		        COUNT(q.id) FILTER (WHERE q.status = 'published')
		 FROM topics t
		 LEFT JOIN questions q ON q.topic_id = t.id
		 WHERE t.subject_id = $1
		 GROUP BY t.id
		 ORDER BY t.position, t.name`, subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.SubjectID, &t.Name, &t.Description, &t.Position,
			&t.CreatedAt, &t.UpdatedAt, &t.QuestionCount); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// GetByIDs retrieves a set of topics. Missing ids are silently absent from
// the result.
func (r *TopicRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Topic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject_id, name, description, position, created_at, updated_at
		 FROM topics WHERE id = ANY($1)
		 ORDER BY position, name`, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.SubjectID, &t.Name, &t.Description, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Update modifies a topic.
func (r *TopicRepository) Update(ctx context.Context, t *model.Topic) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE topics SET name = $1, description = $2, position = $3, updated_at = NOW() WHERE id = $4`,
		t.Name, t.Description, t.Position, t.ID)
	return err
}

// Delete removes a topic by ID.
func (r *TopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	return err
}
