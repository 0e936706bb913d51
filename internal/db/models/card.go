package models

// CardType enumerates the four card variants recognized by Portalbox
// devices. The numeric values are hard-coded in device firmware and must
// not be extended or renumbered without a coordinated firmware change.
type CardType int

const (
	// CardTypeShutdown powers down a device when presented.
	CardTypeShutdown CardType = 1
	// CardTypeProxy keeps a device active after the activating user card
	// is removed.
	CardTypeProxy CardType = 2
	// CardTypeTraining activates a device in training mode for a single
	// equipment type, regardless of which user is training.
	CardTypeTraining CardType = 3
	// CardTypeUser activates a device as a specific user, subject to the
	// user's authorizations.
	CardTypeUser CardType = 4
)

// ValidCardType reports whether t is a member of the card type enumeration.
func ValidCardType(t CardType) bool {
	switch t {
	case CardTypeShutdown, CardTypeProxy, CardTypeTraining, CardTypeUser:
		return true
	}

	return false
}

// String returns the display name of the card type.
func (t CardType) String() string {
	switch t {
	case CardTypeShutdown:
		return "Shutdown Card"
	case CardTypeProxy:
		return "Proxy Card"
	case CardTypeTraining:
		return "Training Card"
	case CardTypeUser:
		return "User Card"
	}

	return "Unknown"
}

// Card represents a physical RFID/NFC token. The ID is the card's
// physical serial, supplied by the caller at creation time and immutable
// afterwards; it is the join key used by logged events.
//
// Exactly one of EquipmentTypeID and UserID is populated, determined by
// TypeID: training cards carry an equipment type, user cards carry a
// user, shutdown and proxy cards carry neither.
type Card struct {
	// ID is the card's physical serial number (caller-supplied, never
	// database-assigned).
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`
	// TypeID is the card variant.
	TypeID CardType `gorm:"not null"`
	// EquipmentTypeID is populated for training cards only.
	EquipmentTypeID *uint
	// UserID is populated for user cards only.
	UserID *uint64
}

// TableName specifies the database table name for the Card model.
func (Card) TableName() string {
	return "cards"
}

// NewShutdownCard returns a shutdown card with the given serial.
func NewShutdownCard(id uint64) *Card {
	return &Card{ID: id, TypeID: CardTypeShutdown}
}

// NewProxyCard returns a proxy card with the given serial.
func NewProxyCard(id uint64) *Card {
	return &Card{ID: id, TypeID: CardTypeProxy}
}

// NewTrainingCard returns a training card scoped to one equipment type.
func NewTrainingCard(id uint64, equipmentTypeID uint) *Card {
	return &Card{ID: id, TypeID: CardTypeTraining, EquipmentTypeID: &equipmentTypeID}
}

// NewUserCard returns a user card bound to one user.
func NewUserCard(id uint64, userID uint64) *Card {
	return &Card{ID: id, TypeID: CardTypeUser, UserID: &userID}
}
