package service

import (
	"context"
	"time"

	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
)

// DashboardData consolidates all metrics for the admin dashboard.
type DashboardData struct {
	TotalUsers           int                                 `json:"total_users"`
	TotalSubjects        int                                 `json:"total_subjects"`
	TotalTopics          int                                 `json:"total_topics"`
	TotalQuestions       int                                 `json:"total_questions"`
	QuestionStatusCounts map[model.QuestionStatus]int        `json:"question_status_counts"`
	SessionsLast7Days    int                                 `json:"sessions_last_7_days"`
	GuestSessionsLast7   int                                 `json:"guest_sessions_last_7_days"`
	PopularTopics        []repository.DashboardTopicActivity `json:"popular_topics"`
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches all dashboard metrics.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	users, subjects, topics, questions, err := s.repo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.repo.GetQuestionStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -7)
	userSessions, guestSessions, err := s.repo.GetSessionActivityCounts(ctx, since)
	if err != nil {
		return nil, err
	}

	popular, err := s.repo.GetPopularTopics(ctx, since, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		TotalUsers:           users,
		TotalSubjects:        subjects,
		TotalTopics:          topics,
		TotalQuestions:       questions,
		QuestionStatusCounts: statusCounts,
		SessionsLast7Days:    userSessions,
		GuestSessionsLast7:   guestSessions,
		PopularTopics:        popular,
	}, nil
}
