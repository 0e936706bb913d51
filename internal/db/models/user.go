package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents a user account in the system.
// Users are created by admin action or CSV import. Role reassignment and
// active/inactive toggling are the only mutations; accounts are never
// hard-deleted because logged events hold foreign keys to users.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the user account is active.
	Active bool
	// Name is the user's display name.
	Name string `gorm:"size:100;not null"`
	// Email is the user's email address, used for web login.
	Email string `gorm:"unique;size:255;not null"`
	// Comment is a free-form admin note on the account.
	Comment string `gorm:"size:255"`
	// Password is the Argon2id hashed password (web login only; device
	// access is card-based and API access is token-based).
	Password string `gorm:"size:255"`
	// RoleID is the ID of the role assigned to this user.
	RoleID uint `gorm:"column:role_id;not null"`
	// Role is the associated role (enforced with a foreign key constraint).
	Role Role `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE"`
	// Authorizations holds the equipment type IDs this user may operate
	// without the training gate, loaded from the users_x_equipment_types
	// join table by the user store.
	Authorizations []uint `gorm:"-"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsAuthorizedFor reports whether the user holds an equipment-type
// authorization for the given equipment type.
func (u *User) IsAuthorizedFor(equipmentTypeID uint) bool {
	for _, id := range u.Authorizations {
		if id == equipmentTypeID {
			return true
		}
	}

	return false
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating user passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}

// UserAuthorization is the join row granting a user the right to operate
// an equipment type without the normal training requirement.
type UserAuthorization struct {
	UserID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	EquipmentTypeID uint   `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for the UserAuthorization model.
func (UserAuthorization) TableName() string {
	return "users_x_equipment_types"
}
