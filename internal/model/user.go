package model

import "time"

// User represents a registered learner account.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	// ExamFocus is the exam the learner is preparing for (board code), used
	// only for dashboard framing.
	ExamFocus string    `json:"exam_focus,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating a learner account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	ExamFocus string `json:"exam_focus" binding:"omitempty,max=10"`
}

// UserLoginRequest is the payload for learner authentication.
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UserLoginResponse is returned after successful learner login.
type UserLoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// GuestTokenResponse is returned when an anonymous visitor starts a trial.
type GuestTokenResponse struct {
	Token         string `json:"token"`
	GuestID       string `json:"guest_id"`
	QuestionLimit int    `json:"question_limit"`
}

// GuestStatus reports how much of the free trial a guest has used.
type GuestStatus struct {
	Answered     int  `json:"answered"`
	Limit        int  `json:"limit"`
	Remaining    int  `json:"remaining"`
	LimitReached bool `json:"limit_reached"`
}

// CreateUserRequest is the admin payload for creating a learner account.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	ExamFocus string `json:"exam_focus" binding:"omitempty,max=10"`
}

// UpdateUserRequest is the admin payload for updating a learner account.
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"omitempty,min=6,max=128"`
	ExamFocus string `json:"exam_focus" binding:"omitempty,max=10"`
}
