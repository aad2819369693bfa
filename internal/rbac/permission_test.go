package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePermission(t *testing.T) {
	s, _ := setupTestService(t)

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := s.CreatePermission("")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("created and readable", func(t *testing.T) {
		view, err := s.CreatePermission("Level_1")
		require.NoError(t, err)
		assert.Equal(t, "Level_1", view.PermissionName)

		got, err := s.GetPermission(view.PermissionID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := s.CreatePermission("Level_1")
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestGetPermissionNotFound(t *testing.T) {
	s, _ := setupTestService(t)

	_, err := s.GetPermission(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePermission(t *testing.T) {
	s, _ := setupTestService(t)

	permIDs := seedPermissions(t, s, "Level_1", "Level_2")
	seedGroup(t, s, "POTUS", permIDs[0])

	t.Run("referenced permission is protected", func(t *testing.T) {
		err := s.DeletePermission(permIDs[0])
		require.ErrorIs(t, err, ErrConflict)

		_, err = s.GetPermission(permIDs[0])
		require.NoError(t, err)
	})

	t.Run("unreferenced permission deletes", func(t *testing.T) {
		require.NoError(t, s.DeletePermission(permIDs[1]))

		_, err := s.GetPermission(permIDs[1])
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		require.ErrorIs(t, s.DeletePermission(42), ErrNotFound)
	})
}

func TestListPermissions(t *testing.T) {
	s, _ := setupTestService(t)

	views, err := s.ListPermissions()
	require.NoError(t, err)
	assert.Empty(t, views)

	seedPermissions(t, s, "Level_1", "Level_2", "Level_3")

	views, err = s.ListPermissions()
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Level_1", views[0].PermissionName)
	assert.Equal(t, "Level_3", views[2].PermissionName)
}
