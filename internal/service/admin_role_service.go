package service

import (
	"context"
	"errors"

	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
)

// ErrProtectedRole guards the seeded superadmin role from edits.
var ErrProtectedRole = errors.New("cannot modify the system superadmin role")

// AdminRoleService handles business logic for admin roles.
type AdminRoleService struct {
	roleRepo *repository.RoleRepository
}

// NewAdminRoleService creates a new AdminRoleService.
func NewAdminRoleService(roleRepo *repository.RoleRepository) *AdminRoleService {
	return &AdminRoleService{roleRepo: roleRepo}
}

// ListRoles retrieves all roles with their permissions.
func (s *AdminRoleService) ListRoles(ctx context.Context) ([]model.RoleWithPermissions, error) {
	return s.roleRepo.ListRolesWithPermissions(ctx)
}

// GetRoleByID retrieves a specific role and its permissions.
func (s *AdminRoleService) GetRoleByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	return s.roleRepo.GetRoleByID(ctx, id)
}

// CreateRole creates a new role and assigns its permissions.
func (s *AdminRoleService) CreateRole(ctx context.Context, name string, permissions []string) (*model.RoleWithPermissions, error) {
	if name == "" {
		return nil, errors.New("role name cannot be empty")
	}

	id, err := s.roleRepo.CreateRole(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(permissions) > 0 {
		if err := s.roleRepo.AssignPermissionsToRole(ctx, id, permissions); err != nil {
			// Creation and assignment are not transactional; clean up the
			// half-created role.
			_ = s.roleRepo.DeleteRole(ctx, id)
			return nil, err
		}
	}

	return s.GetRoleByID(ctx, id)
}

// UpdateRole updates a role's name and replaces its permissions.
func (s *AdminRoleService) UpdateRole(ctx context.Context, id int, name string, permissions []string) (*model.RoleWithPermissions, error) {
	if id == model.SuperAdminRoleID {
		return nil, ErrProtectedRole
	}
	if name == "" {
		return nil, errors.New("role name cannot be empty")
	}

	if err := s.roleRepo.UpdateRole(ctx, id, name); err != nil {
		return nil, err
	}
	if err := s.roleRepo.DeleteAllPermissionsFromRole(ctx, id); err != nil {
		return nil, err
	}
	if len(permissions) > 0 {
		if err := s.roleRepo.AssignPermissionsToRole(ctx, id, permissions); err != nil {
			return nil, err
		}
	}

	return s.GetRoleByID(ctx, id)
}

// DeleteRole deletes a role. Roles still assigned to admins fail at the
// foreign key.
func (s *AdminRoleService) DeleteRole(ctx context.Context, id int) error {
	if id == model.SuperAdminRoleID {
		return ErrProtectedRole
	}
	return s.roleRepo.DeleteRole(ctx, id)
}

// GetAllPermissions retrieves all available permission codes.
func (s *AdminRoleService) GetAllPermissions() []string {
	perms := make([]string, len(model.AllPermissions))
	for i, p := range model.AllPermissions {
		perms[i] = string(p)
	}
	return perms
}
