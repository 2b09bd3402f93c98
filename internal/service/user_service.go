package service

import (
	"context"
	"errors"

	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ErrRegistrationClosed is returned when self-service signup is disabled.
var ErrRegistrationClosed = errors.New("registration is closed")

// UserService handles learner account business logic for both self-service
// signup and the admin back office.
type UserService struct {
	userRepo    *repository.UserRepository
	settingSvc  *SettingService
	authService *AuthService
	log         zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, settingSvc *SettingService, authService *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		settingSvc:  settingSvc,
		authService: authService,
		log:         log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates a learner account via self-service signup.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if open, err := s.settingSvc.GetSettingByKey(ctx, model.SettingRegistrationOpen); err == nil && open == "false" {
		return nil, ErrRegistrationClosed
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		ExamFocus:    req.ExamFocus,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a learner account.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a learner account by email, used during login.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// List retrieves learner accounts for the back office.
func (s *UserService) List(ctx context.Context, search string, page, perPage int) ([]model.User, int, error) {
	return s.userRepo.List(ctx, search, perPage, (page-1)*perPage)
}

// Create adds a learner account from the back office.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		ExamFocus:    req.ExamFocus,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update modifies a learner account; the password only changes when one is
// supplied.
func (s *UserService) Update(ctx context.Context, id int, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.Name = req.Name
	user.ExamFocus = req.ExamFocus
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := s.authService.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Delete removes a learner account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}
