package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

// UserStore persists user accounts and their equipment-type authorizations.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a user store.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user.
func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// CreateAll inserts users in a single transaction. Used by CSV import so
// that a mid-batch failure leaves no partial state.
func (s *UserStore) CreateAll(users []models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Read loads a user by id, with role, role permissions, and authorizations.
func (s *UserStore) Read(id uint64) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}

	if err := s.hydrate(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ReadByEmail loads a user by email, with role, role permissions, and authorizations.
func (s *UserStore) ReadByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	if err := s.hydrate(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Update saves the user.
func (s *UserStore) Update(user *models.User) error {
	return s.db.Save(user).Error
}

// Search lists users matching the filter, ordered by id.
func (s *UserStore) Search(q query.User) ([]models.User, error) {
	tx := s.db.Model(&models.User{}).Preload("Role")

	if q.RoleID != nil {
		tx = tx.Where("role_id = ?", *q.RoleID)
	}

	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}

	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	if err := tx.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// AddAuthorization grants the user an equipment-type authorization.
func (s *UserStore) AddAuthorization(userID uint64, equipmentTypeID uint) error {
	row := models.UserAuthorization{UserID: userID, EquipmentTypeID: equipmentTypeID}
	return s.db.Create(&row).Error
}

// RemoveAuthorization revokes an equipment-type authorization.
func (s *UserStore) RemoveAuthorization(userID uint64, equipmentTypeID uint) error {
	return s.db.
		Where("user_id = ? AND equipment_type_id = ?", userID, equipmentTypeID).
		Delete(&models.UserAuthorization{}).Error
}

// hydrate fills the permission set of the user's role and the user's
// equipment-type authorizations.
func (s *UserStore) hydrate(user *models.User) error {
	var values []int
	err := s.db.Model(&models.RolePermission{}).
		Where("role_id = ?", user.RoleID).
		Pluck("permission", &values).Error
	if err != nil {
		return err
	}

	user.Role.Permissions = make([]perms.Permission, 0, len(values))
	for _, v := range values {
		user.Role.Permissions = append(user.Role.Permissions, perms.Permission(v))
	}

	return s.db.Model(&models.UserAuthorization{}).
		Where("user_id = ?", user.ID).
		Pluck("equipment_type_id", &user.Authorizations).Error
}
