package model

import "time"

// SuperAdminRoleID is the role seeded by the initial migration. It always
// carries every permission and cannot be edited or deleted.
const SuperAdminRoleID = 1

// Role is a named permission bundle assigned to back-office admins.
type Role struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleWithPermissions is a Role together with its permission codes, as the
// role management screens consume it.
type RoleWithPermissions struct {
	*Role
	Permissions []string `json:"permissions"`
}

// Protected reports whether the role is the seeded superadmin role.
func (r *Role) Protected() bool {
	return r.ID == SuperAdminRoleID
}
