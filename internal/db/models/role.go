package models

import (
	"time"

	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

// Role represents a role in the role-based access control (RBAC) system.
// Roles are collections of permissions that are assigned to users.
// System roles (e.g., "admin") are seeded at startup and cannot be deleted.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey"`
	// Name is the unique name of the role (e.g., "admin", "user").
	Name string `gorm:"unique;size:100;not null"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// IsSystem indicates if this is a system role that cannot be deleted.
	IsSystem bool `gorm:"default:false"`
	// Permissions is the role's permission set, loaded from the
	// role_permissions join table by the role store.
	Permissions []perms.Permission `gorm:"-"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// HasPermission reports whether the role's permission set contains p.
func (r *Role) HasPermission(p perms.Permission) bool {
	for _, held := range r.Permissions {
		if held == p {
			return true
		}
	}

	return false
}
