package models

import "time"

// LoggedEventType enumerates the kinds of events emitted by the device
// protocol. Values are stable and shared with reporting queries.
type LoggedEventType int

const (
	// EventUnsuccessfulAuthentication records a rejected card presentation.
	EventUnsuccessfulAuthentication LoggedEventType = 1
	// EventSuccessfulAuthentication records an accepted card presentation.
	EventSuccessfulAuthentication LoggedEventType = 2
	// EventDeauthentication records the end of an activation session.
	EventDeauthentication LoggedEventType = 3
	// EventStartupComplete records a device finishing boot.
	EventStartupComplete LoggedEventType = 4
	// EventPlannedShutdown records a device announcing shutdown.
	EventPlannedShutdown LoggedEventType = 5
	// EventTraining records an activation via training card.
	EventTraining LoggedEventType = 6
)

// String returns the display name of the event type.
func (t LoggedEventType) String() string {
	switch t {
	case EventUnsuccessfulAuthentication:
		return "Unsuccessful Authentication"
	case EventSuccessfulAuthentication:
		return "Successful Authentication"
	case EventDeauthentication:
		return "Deauthentication"
	case EventStartupComplete:
		return "Startup Complete"
	case EventPlannedShutdown:
		return "Planned Shutdown"
	case EventTraining:
		return "Training"
	}

	return "Unknown"
}

// LoggedEvent is an append-only audit record. Application code never
// updates or deletes logged events; the permission enumeration has no
// modify/delete members for logs.
type LoggedEvent struct {
	// ID is the unique identifier for the event.
	ID uint64 `gorm:"primaryKey"`
	// Time is when the event occurred.
	Time time.Time `gorm:"not null"`
	// TypeID is the event kind.
	TypeID LoggedEventType `gorm:"not null"`
	// EquipmentID references the equipment the event happened on.
	EquipmentID uint `gorm:"not null"`
	// CardID references the card involved, if any.
	CardID uint64

	// Display fields resolved via joins at read time; not persisted.
	EquipmentName string   `gorm:"-"`
	LocationName  string   `gorm:"-"`
	UserName      string   `gorm:"-"`
	CardTypeID    CardType `gorm:"-"`
}

// TableName specifies the database table name for the LoggedEvent model.
func (LoggedEvent) TableName() string {
	return "log"
}
