package rbac

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// ListGroups returns the views of all groups.
func (s *Service) ListGroups() ([]GroupView, error) {
	groups, err := s.store.Groups()
	if err != nil {
		return nil, err
	}

	views := make([]GroupView, 0, len(groups))
	for i := range groups {
		views = append(views, NewGroupView(&groups[i]))
	}

	return views, nil
}

// GetGroup returns the view of one group.
func (s *Service) GetGroup(id uint) (*GroupView, error) {
	group, err := s.store.GroupWithPermissions(id)
	if err != nil {
		return nil, notFound(err)
	}

	view := NewGroupView(group)

	return &view, nil
}

// CreateGroup persists a new group with the given permission set. The name
// must be non-empty and unique. An empty permission specification creates the
// group with zero permissions; it is not an error.
func (s *Service) CreateGroup(name string, permissionIDs []uint) (*GroupView, error) {
	if name == "" {
		return nil, pkgerrors.Wrap(ErrValidation, "group name is required")
	}

	if _, err := s.store.GroupByName(name); err == nil {
		return nil, pkgerrors.Wrapf(ErrConflict, "group with name %s already exists", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group := models.Group{Name: name}

	err := s.store.Transaction(func(tx *store.Store) error {
		if errCreate := tx.Create(&group); errCreate != nil {
			return errCreate
		}

		return replaceGroupPermissions(tx, group.ID, permissionIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGroup(group.ID)
}

// DeleteGroup removes a group, its permission links and its membership rows
// atomically. Users whose only group it was end up with zero groups; they are
// not reassigned to the default group.
func (s *Service) DeleteGroup(id uint) error {
	if _, err := s.store.Group(id); err != nil {
		return notFound(err)
	}

	return s.store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteGroupPermissionsOfGroup(id); err != nil {
			return err
		}

		if err := tx.DeleteUserGroupsOfGroup(id); err != nil {
			return err
		}

		return tx.DeleteGroup(id)
	})
}

// EditGroupPermissions fully replaces the permission set of a group.
// An empty id list clears all permissions.
func (s *Service) EditGroupPermissions(id uint, permissionIDs []uint) (*GroupView, error) {
	if _, err := s.store.Group(id); err != nil {
		return nil, notFound(err)
	}

	err := s.store.Transaction(func(tx *store.Store) error {
		return replaceGroupPermissions(tx, id, permissionIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGroup(id)
}
