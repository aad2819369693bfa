package models

import "time"

// DefaultGroupName is the name of the fallback group assigned to users
// created or edited without an explicit group specification. The group is
// created lazily on first need.
const DefaultGroupName = "unspecified"

// Group represents a named collection of users and permissions.
// Users linked to a group inherit all of the group's permissions.
type Group struct {
	// ID is the unique identifier for the group.
	ID uint `gorm:"primaryKey"`
	// Name is the unique display name of the group.
	Name string `gorm:"unique;size:100;not null"`
	// UserGroups are the memberships referencing this group. The membership
	// rows are removed when the group is deleted; the users themselves are kept.
	UserGroups []UserGroup `gorm:"foreignKey:GroupID"`
	// GroupPermissions are the permission assignments owned by this group.
	// They are deleted together with the group.
	GroupPermissions []GroupPermission `gorm:"foreignKey:GroupID"`
	// CreatedAt is the timestamp when the group was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the group was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Group model.
// This overrides GORM's default pluralized table naming.
func (Group) TableName() string {
	return "groups"
}
