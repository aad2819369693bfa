package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
)

func TestNewUserViewAggregation(t *testing.T) {
	read := models.Permission{ID: 1, Name: "read"}
	write := models.Permission{ID: 2, Name: "write"}

	editors := models.Group{
		ID:   10,
		Name: "editors",
		GroupPermissions: []models.GroupPermission{
			{GroupID: 10, PermissionID: 1, Permission: read},
			{GroupID: 10, PermissionID: 2, Permission: write},
		},
	}
	reviewers := models.Group{
		ID:   11,
		Name: "reviewers",
		GroupPermissions: []models.GroupPermission{
			{GroupID: 11, PermissionID: 1, Permission: read},
		},
	}

	testCases := []struct {
		name            string
		user            models.User
		groupIDs        []uint
		groupNames      []string
		permissionIDs   []uint
		permissionNames []string
	}{
		{
			name:            "no memberships yields empty lists",
			user:            models.User{ID: 1, Name: "John"},
			groupIDs:        []uint{},
			groupNames:      []string{},
			permissionIDs:   []uint{},
			permissionNames: []string{},
		},
		{
			name: "shared permission appears once",
			user: models.User{
				ID: 1,
				UserGroups: []models.UserGroup{
					{UserID: 1, GroupID: 10, Group: editors},
					{UserID: 1, GroupID: 11, Group: reviewers},
				},
			},
			groupIDs:        []uint{10, 11},
			groupNames:      []string{"editors", "reviewers"},
			permissionIDs:   []uint{1, 2},
			permissionNames: []string{"read", "write"},
		},
		{
			name: "unloaded group keeps the id but contributes no names",
			user: models.User{
				ID: 1,
				UserGroups: []models.UserGroup{
					{UserID: 1, GroupID: 99},
					{UserID: 1, GroupID: 11, Group: reviewers},
				},
			},
			groupIDs:        []uint{99, 11},
			groupNames:      []string{"reviewers"},
			permissionIDs:   []uint{1},
			permissionNames: []string{"read"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view := NewUserView(&tc.user)
			assert.Equal(t, tc.groupIDs, view.GroupIDs)
			assert.Equal(t, tc.groupNames, view.GroupNames)
			assert.Equal(t, tc.permissionIDs, view.PermissionIDs)
			assert.Equal(t, tc.permissionNames, view.PermissionNames)
		})
	}
}

func TestNewUserViewFirstSeenOrder(t *testing.T) {
	perms := []models.Permission{
		{ID: 3, Name: "delete"},
		{ID: 1, Name: "read"},
		{ID: 2, Name: "write"},
	}

	group := models.Group{ID: 10, Name: "ops"}
	for _, p := range perms {
		group.GroupPermissions = append(group.GroupPermissions, models.GroupPermission{
			GroupID: 10, PermissionID: p.ID, Permission: p,
		})
	}

	user := models.User{
		ID:         1,
		UserGroups: []models.UserGroup{{UserID: 1, GroupID: 10, Group: group}},
	}

	view := NewUserView(&user)
	assert.Equal(t, []uint{3, 1, 2}, view.PermissionIDs)
	assert.Equal(t, []string{"delete", "read", "write"}, view.PermissionNames)
}

func TestNewGroupViewDeduplicates(t *testing.T) {
	read := models.Permission{ID: 1, Name: "read"}

	group := models.Group{
		ID:   10,
		Name: "editors",
		GroupPermissions: []models.GroupPermission{
			{GroupID: 10, PermissionID: 1, Permission: read},
			{GroupID: 10, PermissionID: 1, Permission: read},
			{GroupID: 10, PermissionID: 2}, // permission not loaded
		},
	}

	view := NewGroupView(&group)
	assert.Equal(t, uint(10), view.GroupID)
	assert.Equal(t, "editors", view.GroupName)
	assert.Equal(t, []uint{1}, view.PermissionIDs)
	assert.Equal(t, []string{"read"}, view.PermissionNames)
}

func TestNewPermissionView(t *testing.T) {
	view := NewPermissionView(&models.Permission{ID: 7, Name: "Level_1"})
	assert.Equal(t, PermissionView{PermissionID: 7, PermissionName: "Level_1"}, view)
}
