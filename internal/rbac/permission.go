package rbac

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
)

// ListPermissions returns the views of all permissions.
func (s *Service) ListPermissions() ([]PermissionView, error) {
	permissions, err := s.store.Permissions()
	if err != nil {
		return nil, err
	}

	views := make([]PermissionView, 0, len(permissions))
	for i := range permissions {
		views = append(views, NewPermissionView(&permissions[i]))
	}

	return views, nil
}

// GetPermission returns the view of one permission.
func (s *Service) GetPermission(id uint) (*PermissionView, error) {
	permission, err := s.store.Permission(id)
	if err != nil {
		return nil, notFound(err)
	}

	view := NewPermissionView(permission)

	return &view, nil
}

// CreatePermission persists a new permission with a non-empty unique name.
func (s *Service) CreatePermission(name string) (*PermissionView, error) {
	if name == "" {
		return nil, pkgerrors.Wrap(ErrValidation, "permission name is required")
	}

	if _, err := s.store.PermissionByName(name); err == nil {
		return nil, pkgerrors.Wrapf(ErrConflict, "permission with name %s already exists", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission := models.Permission{Name: name}
	if err := s.store.Create(&permission); err != nil {
		return nil, err
	}

	view := NewPermissionView(&permission)

	return &view, nil
}

// DeletePermission removes a permission. A permission still referenced by
// any group cannot be deleted; there is no cascade for this direction.
func (s *Service) DeletePermission(id uint) error {
	if _, err := s.store.Permission(id); err != nil {
		return notFound(err)
	}

	inUse, err := s.store.PermissionInUse(id)
	if err != nil {
		return err
	}

	if inUse {
		return pkgerrors.Wrapf(ErrConflict, "permission %d is still in use by one or more groups", id)
	}

	return s.store.DeletePermission(id)
}
