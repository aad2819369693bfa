package rbac

import (
	"github.com/pentagon-api/pentagon-api/internal/db/models"
)

// UserView is the read model of a user. The permission lists are the
// transitively resolved, deduplicated union over all of the user's groups.
// The password credential is never part of the view.
type UserView struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	Email           string   `json:"email"`
	GroupIDs        []uint   `json:"groupIds"`
	GroupNames      []string `json:"groupNames"`
	PermissionIDs   []uint   `json:"permissionIds"`
	PermissionNames []string `json:"permissionNames"`
}

// GroupView is the read model of a group with its deduplicated permissions.
type GroupView struct {
	GroupID         uint     `json:"groupId"`
	GroupName       string   `json:"groupName"`
	PermissionIDs   []uint   `json:"permissionIds"`
	PermissionNames []string `json:"permissionNames"`
}

// PermissionView is the read model of a permission.
type PermissionView struct {
	PermissionID   uint   `json:"permissionId"`
	PermissionName string `json:"permissionName"`
}

// NewUserView projects a user and its preloaded link graph into a view.
// It is a pure function over the entity graph: group names are deduplicated
// (memberships whose group is not loaded are skipped), permissions are the
// union across all groups with ids and names deduplicated independently.
// All lists keep first-seen order.
func NewUserView(user *models.User) UserView {
	view := UserView{
		ID:              user.ID,
		Name:            user.Name,
		Surname:         user.Surname,
		Email:           user.Email,
		GroupIDs:        make([]uint, 0, len(user.UserGroups)),
		GroupNames:      make([]string, 0, len(user.UserGroups)),
		PermissionIDs:   []uint{},
		PermissionNames: []string{},
	}

	seenGroupName := make(map[string]struct{})
	seenPermissionID := make(map[uint]struct{})
	seenPermissionName := make(map[string]struct{})

	for _, membership := range user.UserGroups {
		view.GroupIDs = append(view.GroupIDs, membership.GroupID)

		if membership.Group.ID == 0 {
			continue // group not loaded
		}

		if _, ok := seenGroupName[membership.Group.Name]; !ok {
			seenGroupName[membership.Group.Name] = struct{}{}
			view.GroupNames = append(view.GroupNames, membership.Group.Name)
		}

		for _, link := range membership.Group.GroupPermissions {
			if _, ok := seenPermissionID[link.PermissionID]; !ok {
				seenPermissionID[link.PermissionID] = struct{}{}
				view.PermissionIDs = append(view.PermissionIDs, link.PermissionID)
			}

			if link.Permission.ID == 0 {
				continue // permission not loaded
			}

			if _, ok := seenPermissionName[link.Permission.Name]; !ok {
				seenPermissionName[link.Permission.Name] = struct{}{}
				view.PermissionNames = append(view.PermissionNames, link.Permission.Name)
			}
		}
	}

	return view
}

// NewGroupView projects a group and its preloaded permission links into a view.
func NewGroupView(group *models.Group) GroupView {
	view := GroupView{
		GroupID:         group.ID,
		GroupName:       group.Name,
		PermissionIDs:   make([]uint, 0, len(group.GroupPermissions)),
		PermissionNames: make([]string, 0, len(group.GroupPermissions)),
	}

	seenID := make(map[uint]struct{})
	seenName := make(map[string]struct{})

	for _, link := range group.GroupPermissions {
		if link.Permission.ID == 0 {
			continue // permission not loaded
		}

		if _, ok := seenID[link.PermissionID]; !ok {
			seenID[link.PermissionID] = struct{}{}
			view.PermissionIDs = append(view.PermissionIDs, link.PermissionID)
		}

		if _, ok := seenName[link.Permission.Name]; !ok {
			seenName[link.Permission.Name] = struct{}{}
			view.PermissionNames = append(view.PermissionNames, link.Permission.Name)
		}
	}

	return view
}

// NewPermissionView projects a permission into a view.
func NewPermissionView(permission *models.Permission) PermissionView {
	return PermissionView{
		PermissionID:   permission.ID,
		PermissionName: permission.Name,
	}
}
