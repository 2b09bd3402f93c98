package model

import (
	"time"

	"github.com/google/uuid"
)

// TopicProgress is a learner's cumulative performance on one topic,
// maintained asynchronously by the progress worker after each submission.
type TopicProgress struct {
	UserID             int       `json:"user_id"`
	TopicID            uuid.UUID `json:"topic_id"`
	TopicName          string    `json:"topic_name,omitempty"`
	QuestionsAttempted int       `json:"questions_attempted"`
	QuestionsCorrect   int       `json:"questions_correct"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LearnerDashboard is the aggregate view behind GET /dashboard.
type LearnerDashboard struct {
	SessionsCompleted int               `json:"sessions_completed"`
	QuestionsAnswered int               `json:"questions_answered"`
	QuestionsCorrect  int               `json:"questions_correct"`
	AverageScore      *float64          `json:"average_score,omitempty"`
	RecentSessions    []LearningSession `json:"recent_sessions"`
	TopicProgress     []TopicProgress   `json:"topic_progress"`
}
