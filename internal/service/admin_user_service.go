package service

import (
	"context"

	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AdminUserService handles back-office staff account management.
type AdminUserService struct {
	adminRepo   *repository.AdminRepository
	roleRepo    *repository.RoleRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewAdminUserService creates a new AdminUserService.
func NewAdminUserService(adminRepo *repository.AdminRepository, roleRepo *repository.RoleRepository, authService *AuthService, log zerolog.Logger) *AdminUserService {
	return &AdminUserService{
		adminRepo:   adminRepo,
		roleRepo:    roleRepo,
		authService: authService,
		log:         log.With().Str("component", "admin_user_service").Logger(),
	}
}

// ListAdmins retrieves all admins with role names.
func (s *AdminUserService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return s.adminRepo.List(ctx)
}

// CreateAdmin creates a new admin user.
func (s *AdminUserService) CreateAdmin(ctx context.Context, email, name, password string, roleID int) (*model.Admin, error) {
	if _, err := s.roleRepo.GetRoleByID(ctx, roleID); err != nil {
		return nil, err
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return s.adminRepo.GetByID(ctx, admin.ID)
}

// UpdateAdmin updates an admin's profile and role. A non-empty password
// replaces the stored hash.
func (s *AdminUserService) UpdateAdmin(ctx context.Context, id int, email, name, password string, roleID int) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.GetRoleByID(ctx, roleID); err != nil {
		return nil, err
	}

	admin.Email = email
	admin.Name = name
	admin.RoleID = roleID
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	if password != "" {
		hash, err := s.authService.HashPassword(password)
		if err != nil {
			return nil, err
		}
		if err := s.adminRepo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	return s.adminRepo.GetByID(ctx, id)
}

// DeleteAdmin removes an admin account.
func (s *AdminUserService) DeleteAdmin(ctx context.Context, id int) error {
	return s.adminRepo.Delete(ctx, id)
}
