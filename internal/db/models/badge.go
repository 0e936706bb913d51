package models

import "time"

// BadgeRule names an achievement track and lists the equipment types
// whose authenticated usage counts toward it. A rule owns an ordered list
// of levels; levels are evaluated against a user's summed usage and the
// highest qualifying level wins.
type BadgeRule struct {
	// ID is the unique identifier for the badge rule.
	ID uint `gorm:"primaryKey"`
	// Name is the display name of the achievement track.
	Name string `gorm:"size:100;not null"`
	// EquipmentTypeIDs lists the equipment types counted by this rule,
	// loaded from the badge_rules_x_equipment_types join table.
	EquipmentTypeIDs []uint `gorm:"-"`
	// Levels are the rule's badge levels, ordered by ascending threshold.
	Levels []BadgeLevel `gorm:"foreignKey:RuleID;references:ID"`
	// CreatedAt is the timestamp when the rule was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the rule was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the BadgeRule model.
func (BadgeRule) TableName() string {
	return "badge_rules"
}

// BadgeLevel is one tier of a badge rule.
type BadgeLevel struct {
	// ID is the unique identifier for the level.
	ID uint `gorm:"primaryKey"`
	// RuleID references the owning badge rule.
	RuleID uint `gorm:"not null"`
	// Name is the display name of the level.
	Name string `gorm:"size:100;not null"`
	// UsesThreshold is the summed usage count required to earn the level.
	UsesThreshold int `gorm:"not null"`
	// Image is the badge image asset identifier.
	Image string `gorm:"size:255"`
}

// TableName specifies the database table name for the BadgeLevel model.
func (BadgeLevel) TableName() string {
	return "badge_levels"
}

// BadgeRuleEquipmentType is the join row binding an equipment type to a
// badge rule.
type BadgeRuleEquipmentType struct {
	RuleID          uint `gorm:"primaryKey;autoIncrement:false"`
	EquipmentTypeID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for the BadgeRuleEquipmentType model.
func (BadgeRuleEquipmentType) TableName() string {
	return "badge_rules_x_equipment_types"
}
