package models

import "time"

// User represents a user account in the system.
// Users acquire permissions exclusively through group membership:
// the effective permission set of a user is the deduplicated union of the
// permissions of all groups the user belongs to.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`
	// Name is the user's first or given name.
	Name string `gorm:"size:100"`
	// Surname is the user's last or family name.
	Surname string `gorm:"size:100;not null"`
	// Email is the user's unique email address.
	Email string `gorm:"unique;size:255;not null"`
	// Password is the hashed password credential. It is write-only and never
	// appears in any serialized view.
	Password string `gorm:"size:255" json:"-"`
	// UserGroups are the group memberships owned by this user.
	// They are deleted together with the user.
	UserGroups []UserGroup `gorm:"foreignKey:UserID"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the User model.
// This overrides GORM's default pluralized table naming.
func (User) TableName() string {
	return "users"
}
