// Package query defines typed filter criteria passed to the persistence
// layer. Query objects are plain data carriers; nil/zero fields mean
// "no filter".
package query

import (
	"time"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
)

// Card filters card searches.
type Card struct {
	UserID          *uint64
	EquipmentTypeID *uint
	TypeID          *models.CardType
}

// Equipment filters equipment searches.
type Equipment struct {
	LocationID *uint
	TypeID     *uint
	MACAddress string
	// InService restricts results to in-service (true) or out-of-service
	// (false) equipment when set.
	InService *bool
}

// LoggedEvent filters event log searches.
type LoggedEvent struct {
	EquipmentID *uint
	LocationID  *uint
	TypeID      *models.LoggedEventType
	Since       *time.Time
	Until       *time.Time
}

// Charge filters charge searches.
type Charge struct {
	UserID      *uint64
	EquipmentID *uint
}

// Payment filters payment searches.
type Payment struct {
	UserID *uint64
}

// User filters user searches.
type User struct {
	RoleID *uint
	Active *bool
	// Search matches name or email substrings.
	Search string
}
