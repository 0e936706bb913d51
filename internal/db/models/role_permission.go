package models

// RolePermission is the join row binding a permission value to a role.
// Permission values are members of the closed perms enumeration, not rows
// of a permissions table; unrecognized values are rejected at role save
// time by the role service.
type RolePermission struct {
	// RoleID is the role this grant belongs to.
	RoleID uint `gorm:"primaryKey;autoIncrement:false"`
	// Permission is the integer-coded permission value.
	Permission int `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for the RolePermission model.
func (RolePermission) TableName() string {
	return "role_permissions"
}
