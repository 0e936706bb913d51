// Package stores implements the persistence layer. Each store wraps a
// gorm handle and exposes create/read/update/delete/search for one
// entity. Not-found conditions surface as gorm.ErrRecordNotFound; the
// service layer translates them into business errors.
package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

// RoleStore persists roles and their permission sets.
type RoleStore struct {
	db *gorm.DB
}

// NewRoleStore creates a role store.
func NewRoleStore(db *gorm.DB) *RoleStore {
	return &RoleStore{db: db}
}

// Create inserts the role and its permission rows in one transaction.
func (s *RoleStore) Create(role *models.Role) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}

		return replacePermissions(tx, role.ID, role.Permissions)
	})
}

// Read loads a role by id, including its permission set.
func (s *RoleStore) Read(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return nil, err
	}

	if err := s.loadPermissions(&role); err != nil {
		return nil, err
	}

	return &role, nil
}

// ReadByName loads a role by exact name, including its permission set.
func (s *RoleStore) ReadByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}

	if err := s.loadPermissions(&role); err != nil {
		return nil, err
	}

	return &role, nil
}

// Update saves the role and replaces its permission rows.
func (s *RoleStore) Update(role *models.Role) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(role).Error; err != nil {
			return err
		}

		return replacePermissions(tx, role.ID, role.Permissions)
	})
}

// Delete removes the role and its permission rows.
func (s *RoleStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Role{}, id).Error
	})
}

// Search lists all roles with their permission sets, ordered by name.
func (s *RoleStore) Search() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}

	for i := range roles {
		if err := s.loadPermissions(&roles[i]); err != nil {
			return nil, err
		}
	}

	return roles, nil
}

func (s *RoleStore) loadPermissions(role *models.Role) error {
	var values []int
	err := s.db.Model(&models.RolePermission{}).
		Where("role_id = ?", role.ID).
		Pluck("permission", &values).Error
	if err != nil {
		return err
	}

	role.Permissions = make([]perms.Permission, 0, len(values))
	for _, v := range values {
		role.Permissions = append(role.Permissions, perms.Permission(v))
	}

	return nil
}

func replacePermissions(tx *gorm.DB, roleID uint, permissions []perms.Permission) error {
	if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
		return err
	}

	for _, p := range permissions {
		row := models.RolePermission{RoleID: roleID, Permission: int(p)}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
