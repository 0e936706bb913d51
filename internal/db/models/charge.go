package models

import "time"

// Charge is a ledger entry debiting a user for equipment usage. The
// amount is computed by the billing stored procedure on deactivation;
// this core only records and reads charges.
type Charge struct {
	// ID is the unique identifier for the charge.
	ID uint64 `gorm:"primaryKey"`
	// UserID references the charged user.
	UserID uint64 `gorm:"not null"`
	// EquipmentID references the equipment the charge was incurred on.
	EquipmentID uint `gorm:"not null"`
	// Time is when the charge was recorded.
	Time time.Time
	// Amount is the charged amount as a decimal string.
	Amount string `gorm:"size:32;not null"`
	// ChargePolicyID is the policy in effect when the charge was computed.
	ChargePolicyID ChargePolicy
	// ChargeRate is the rate used to compute the charge, as a decimal string.
	ChargeRate string `gorm:"size:32"`
	// ChargedTime is the billed duration in minutes.
	ChargedTime int
}

// TableName specifies the database table name for the Charge model.
func (Charge) TableName() string {
	return "charges"
}
