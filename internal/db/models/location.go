package models

import "time"

// Location is a named grouping of equipment used for reporting.
type Location struct {
	// ID is the unique identifier for the location.
	ID uint `gorm:"primaryKey"`
	// Name is the display name of the location.
	Name string `gorm:"size:100;not null"`
	// CreatedAt is the timestamp when the location was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the location was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Location model.
func (Location) TableName() string {
	return "locations"
}
