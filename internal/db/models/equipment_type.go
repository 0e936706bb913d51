package models

import "time"

// ChargePolicy enumerates the billing rules applied when an equipment
// activation session ends. The numeric values are coupled to the billing
// stored procedures and are deliberately not database-editable.
type ChargePolicy int

const (
	// ChargePolicyManuallyAdjusted marks charges entered or corrected by hand.
	ChargePolicyManuallyAdjusted ChargePolicy = 1
	// ChargePolicyNoCharge disables billing for the equipment type.
	ChargePolicyNoCharge ChargePolicy = 2
	// ChargePolicyPerUse bills a flat rate per activation session.
	ChargePolicyPerUse ChargePolicy = 3
	// ChargePolicyPerMinute bills the rate per minute of activation.
	ChargePolicyPerMinute ChargePolicy = 4
)

// ValidChargePolicy reports whether p is a member of the charge policy enumeration.
func ValidChargePolicy(p ChargePolicy) bool {
	switch p {
	case ChargePolicyManuallyAdjusted, ChargePolicyNoCharge, ChargePolicyPerUse, ChargePolicyPerMinute:
		return true
	}

	return false
}

// String returns the display name of the charge policy.
func (p ChargePolicy) String() string {
	switch p {
	case ChargePolicyManuallyAdjusted:
		return "Manually Adjusted"
	case ChargePolicyNoCharge:
		return "No Charge"
	case ChargePolicyPerUse:
		return "Per Use"
	case ChargePolicyPerMinute:
		return "Per Minute"
	}

	return "Unknown"
}

// EquipmentType groups equipment with shared training and billing rules.
type EquipmentType struct {
	// ID is the unique identifier for the equipment type.
	ID uint `gorm:"primaryKey"`
	// Name is the display name of the equipment type.
	Name string `gorm:"size:100;not null"`
	// RequiresTraining gates activation on a per-user authorization.
	RequiresTraining bool
	// ChargeRate is the billing rate as a decimal string to avoid float
	// rounding; its interpretation depends on the charge policy.
	ChargeRate string `gorm:"size:32"`
	// ChargePolicyID selects the billing rule for this equipment type.
	ChargePolicyID ChargePolicy `gorm:"not null"`
	// AllowProxy indicates whether a proxy card may keep this type's
	// equipment active.
	AllowProxy bool
	// CreatedAt is the timestamp when the type was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the type was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the EquipmentType model.
func (EquipmentType) TableName() string {
	return "equipment_types"
}
