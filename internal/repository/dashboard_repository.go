package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (totalUsers, totalSubjects, totalTopics, totalQuestions int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM topics),
			(SELECT COUNT(*) FROM questions)`,
	).Scan(&totalUsers, &totalSubjects, &totalTopics, &totalQuestions)
	return
}

// GetQuestionStatusCounts retrieves the distribution of questions by status.
func (r *DashboardRepository) GetQuestionStatusCounts(ctx context.Context) (map[model.QuestionStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM questions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.QuestionStatus]int)
	for rows.Next() {
		var status model.QuestionStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// GetSessionActivityCounts retrieves how many sessions started in the last
// window, split between registered learners and guests.
func (r *DashboardRepository) GetSessionActivityCounts(ctx context.Context, since time.Time) (userSessions, guestSessions int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE user_id IS NOT NULL),
			COUNT(*) FILTER (WHERE guest_id IS NOT NULL)
		 FROM learning_sessions
		 WHERE started_at >= $1`, since,
	).Scan(&userSessions, &guestSessions)
	return
}

// DashboardTopicActivity is a topic ranked by recent session volume.
type DashboardTopicActivity struct {
	TopicID      uuid.UUID `json:"topic_id"`
	TopicName    string    `json:"topic_name"`
	SessionCount int       `json:"session_count"`
}

// GetPopularTopics retrieves the N topics most picked for sessions since a
// point in time.
func (r *DashboardRepository) GetPopularTopics(ctx context.Context, since time.Time, limit int) ([]DashboardTopicActivity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, COUNT(*) AS session_count
		 FROM learning_sessions s
		 JOIN unnest(s.topic_ids) AS sid(id) ON TRUE
		 JOIN topics t ON t.id = sid.id
		 WHERE s.started_at >= $1
		 GROUP BY t.id, t.name
		 ORDER BY session_count DESC
		 LIMIT $2`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []DashboardTopicActivity
	for rows.Next() {
		var t DashboardTopicActivity
		if err := rows.Scan(&t.TopicID, &t.TopicName, &t.SessionCount); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	if topics == nil {
		topics = []DashboardTopicActivity{}
	}
	return topics, rows.Err()
}
