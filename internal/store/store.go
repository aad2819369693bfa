// Package store implements the entity store for users, groups, permissions
// and their link tables on top of gorm.
package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
)

const (
	nameQueryPattern  = "name = ?"
	emailQueryPattern = "email = ?"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// userLinkGraph preloads the full two-hop link graph of a user:
// memberships, their groups and the permissions of those groups.
func userLinkGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("UserGroups.Group.GroupPermissions.Permission")
}

// Store wraps a gorm connection and exposes the lookups, batch existence
// checks and atomic mutations the lifecycle operations are built from.
// All multi-row writes of one logical operation run inside Transaction;
// no partial link-table state is ever observable to a subsequent read.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm connection.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Store{db: db}, nil
}

// Migrate creates or updates the database schema for all entities.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate( //nolint:wrapcheck
		&models.User{},
		&models.Group{},
		&models.Permission{},
		&models.UserGroup{},
		&models.GroupPermission{},
	)
}

// Transaction runs fn against a transactional view of the store.
// Either every write inside fn commits or none do.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error { //nolint:wrapcheck
		return fn(&Store{db: tx})
	})
}

// User retrieves a user by id without link preloads.
func (s *Store) User(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &user, nil
}

// UserWithLinks retrieves a user by id including its full link graph
// (memberships, groups and group permissions).
func (s *Store) UserWithLinks(id uint) (*models.User, error) {
	var user models.User
	if err := userLinkGraph(s.db).First(&user, id).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &user, nil
}

// Users retrieves all users including their link graphs.
func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	if err := userLinkGraph(s.db).Order("id").Find(&users).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return users, nil
}

// CountUsers returns the number of user rows.
func (s *Store) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err //nolint:wrapcheck
	}

	return count, nil
}

// EmailTaken reports whether another user than excludeUserID already holds the email.
func (s *Store) EmailTaken(email string, excludeUserID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.User{}).
		Where(emailQueryPattern, email).
		Where("id <> ?", excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return count > 0, nil
}

// Group retrieves a group by id without link preloads.
func (s *Store) Group(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.First(&group, id).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &group, nil
}

// GroupWithPermissions retrieves a group by id including its permission links.
func (s *Store) GroupWithPermissions(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.Preload("GroupPermissions.Permission").First(&group, id).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &group, nil
}

// Groups retrieves all groups including their permission links.
func (s *Store) Groups() ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.Preload("GroupPermissions.Permission").Order("id").Find(&groups).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return groups, nil
}

// GroupByName retrieves a group by its unique name.
func (s *Store) GroupByName(name string) (*models.Group, error) {
	var group models.Group
	if err := s.db.Where(nameQueryPattern, name).First(&group).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &group, nil
}

// ExistingGroupIDs returns the subset of ids that exist in the groups table.
func (s *Store) ExistingGroupIDs(ids []uint) ([]uint, error) {
	var existing []uint
	if len(ids) == 0 {
		return existing, nil
	}

	err := s.db.Model(&models.Group{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return existing, nil
}

// GroupsByName returns the groups whose name is in names; missing names are
// simply absent from the result.
func (s *Store) GroupsByName(names []string) ([]models.Group, error) {
	var groups []models.Group
	if len(names) == 0 {
		return groups, nil
	}

	err := s.db.Where("name IN ?", names).Find(&groups).Error
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return groups, nil
}

// EnsureDefaultGroup returns the default fallback group, creating it if it
// does not exist yet. The create is an upsert so two concurrent first
// requests cannot both insert; the loser of the race reads the winner's row.
func (s *Store) EnsureDefaultGroup() (*models.Group, error) {
	group := models.Group{Name: models.DefaultGroupName}

	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&group).Error
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	// re-read: on conflict the insert was a no-op and group.ID is not populated
	return s.GroupByName(models.DefaultGroupName)
}

// Permission retrieves a permission by id.
func (s *Store) Permission(id uint) (*models.Permission, error) {
	var permission models.Permission
	if err := s.db.First(&permission, id).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permission, nil
}

// Permissions retrieves all permissions.
func (s *Store) Permissions() ([]models.Permission, error) {
	var permissions []models.Permission
	if err := s.db.Order("id").Find(&permissions).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return permissions, nil
}

// PermissionByName retrieves a permission by its unique name.
func (s *Store) PermissionByName(name string) (*models.Permission, error) {
	var permission models.Permission
	if err := s.db.Where(nameQueryPattern, name).First(&permission).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permission, nil
}

// ExistingPermissionIDs returns the subset of ids that exist in the permissions table.
func (s *Store) ExistingPermissionIDs(ids []uint) ([]uint, error) {
	var existing []uint
	if len(ids) == 0 {
		return existing, nil
	}

	err := s.db.Model(&models.Permission{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return existing, nil
}

// PermissionInUse reports whether any group permission link references the permission.
func (s *Store) PermissionInUse(id uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.GroupPermission{}).
		Where("permission_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return count > 0, nil
}

// Create persists a new entity row.
func (s *Store) Create(entity any) error {
	return s.db.Create(entity).Error //nolint:wrapcheck
}

// Save persists all fields of an existing entity row.
func (s *Store) Save(entity any) error {
	return s.db.Save(entity).Error //nolint:wrapcheck
}

// DeleteUser removes the user row itself. Link rows are removed separately
// by the caller so the cascade is an explicit part of the operation.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Delete(&models.User{}, id).Error //nolint:wrapcheck
}

// DeleteGroup removes the group row itself.
func (s *Store) DeleteGroup(id uint) error {
	return s.db.Delete(&models.Group{}, id).Error //nolint:wrapcheck
}

// DeletePermission removes the permission row itself.
func (s *Store) DeletePermission(id uint) error {
	return s.db.Delete(&models.Permission{}, id).Error //nolint:wrapcheck
}

// DeleteUserGroupsOfUser removes all membership rows of a user.
func (s *Store) DeleteUserGroupsOfUser(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.UserGroup{}).Error //nolint:wrapcheck
}

// DeleteUserGroupsOfGroup removes all membership rows referencing a group.
func (s *Store) DeleteUserGroupsOfGroup(groupID uint) error {
	return s.db.Where("group_id = ?", groupID).Delete(&models.UserGroup{}).Error //nolint:wrapcheck
}

// DeleteGroupPermissionsOfGroup removes all permission links of a group.
func (s *Store) DeleteGroupPermissionsOfGroup(groupID uint) error {
	return s.db.Where("group_id = ?", groupID).Delete(&models.GroupPermission{}).Error //nolint:wrapcheck
}

// CreateUserGroups inserts the given membership rows.
func (s *Store) CreateUserGroups(links []models.UserGroup) error {
	if len(links) == 0 {
		return nil
	}

	return s.db.Create(&links).Error //nolint:wrapcheck
}

// CreateGroupPermissions inserts the given permission link rows.
func (s *Store) CreateGroupPermissions(links []models.GroupPermission) error {
	if len(links) == 0 {
		return nil
	}

	return s.db.Create(&links).Error //nolint:wrapcheck
}
