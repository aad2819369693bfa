package models

import "time"

// Permission represents a granular access right.
// Permissions are assigned to groups; users receive them transitively
// through their group memberships. A permission that is still referenced
// by a group cannot be deleted.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID uint `gorm:"primaryKey"`
	// Name is the unique permission name.
	Name string `gorm:"unique;size:100;not null"`
	// CreatedAt is the timestamp when the permission was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the permission was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Permission model.
// This overrides GORM's default pluralized table naming.
func (Permission) TableName() string {
	return "permissions"
}
