package models

import "time"

// APIKey is an opaque bearer credential for server-to-server callers.
// Presenting a valid token grants the seeded admin role; per-key
// permission scoping is intentionally not implemented.
type APIKey struct {
	// ID is the unique identifier for the key.
	ID uint `gorm:"primaryKey"`
	// Name is a human-readable label for the key.
	Name string `gorm:"size:100;not null"`
	// Token is the opaque bearer secret.
	Token string `gorm:"unique;size:64;not null"`
	// CreatedAt is the timestamp when the key was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the key was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the APIKey model.
func (APIKey) TableName() string {
	return "api_keys"
}
