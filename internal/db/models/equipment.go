package models

import (
	"regexp"
	"strings"
	"time"
)

// macPattern matches a MAC address with consistent separator
// punctuation, e.g. "01-23-45-67-89-AB", "01:23:45:67:89:ab" or
// "0123456789ab".
var macPattern = regexp.MustCompile(`^(?:` +
	`[0-9a-fA-F]{12}` +
	`|[0-9a-fA-F]{2}(?:-[0-9a-fA-F]{2}){5}` +
	`|[0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5}` +
	`|[0-9a-fA-F]{2}(?:\.[0-9a-fA-F]{2}){5}` +
	`)$`)

// NormalizeMACAddress strips separator punctuation and lowercases a MAC
// address, returning the canonical 12 hex character form. The second
// return value is false when the input does not look like a MAC address.
func NormalizeMACAddress(mac string) (string, bool) {
	if !macPattern.MatchString(mac) {
		return "", false
	}

	normalized := strings.NewReplacer("-", "", ":", "", ".", "").Replace(mac)

	return strings.ToLower(normalized), true
}

// Equipment represents a piece of equipment with a Portalbox device
// attached. Equipment rows are created by device self-registration or by
// admin CRUD; the MAC address is unique among in-service equipment.
type Equipment struct {
	// ID is the unique identifier for the equipment.
	ID uint `gorm:"primaryKey"`
	// Name is the display name of the equipment.
	Name string `gorm:"size:100;not null"`
	// TypeID references the equipment type.
	TypeID uint `gorm:"column:type_id;not null"`
	// Type is the associated equipment type.
	Type EquipmentType `gorm:"foreignKey:TypeID;references:ID"`
	// LocationID references the location housing the equipment.
	LocationID uint `gorm:"not null"`
	// Location is the associated location.
	Location Location `gorm:"foreignKey:LocationID;references:ID"`
	// MACAddress is the device MAC, normalized to 12 lowercase hex chars.
	MACAddress string `gorm:"column:mac_address;size:12;not null"`
	// IPAddress is the device-reported IP, if any.
	IPAddress *string `gorm:"size:45"`
	// Timeout is the seconds of inactivity before auto-deactivation.
	Timeout int
	// InService marks the equipment as operational.
	InService bool
	// InUse marks an active session on the equipment.
	InUse bool
	// ServiceMinutes is the cumulative activation time counter.
	ServiceMinutes int
	// CreatedAt is the timestamp when the equipment was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the equipment was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Equipment model.
func (Equipment) TableName() string {
	return "equipment"
}
