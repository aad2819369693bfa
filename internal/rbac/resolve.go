package rbac

import (
	"errors"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// resolveUserGroupIDs turns a mixed id/name group specification into the set
// of group ids a user should be linked to.
//
// With no specification at all the default group is ensured and becomes the
// single membership. Otherwise both lists are validated independently and
// their results unioned, deduplicated by group id across the two sources so
// a group supplied by both id and name yields exactly one link.
func resolveUserGroupIDs(tx *store.Store, groupIDs []uint, groupNames []string) ([]uint, error) {
	if len(groupIDs) == 0 && len(groupNames) == 0 {
		defaultGroup, err := tx.EnsureDefaultGroup()
		if err != nil {
			return nil, err
		}

		return []uint{defaultGroup.ID}, nil
	}

	fromIDs, idErr := checkGroupIDs(tx, groupIDs)
	fromNames, nameErr := checkGroupNames(tx, groupNames)

	if err := mergeUnknownGroupRefs(idErr, nameErr); err != nil {
		return nil, err
	}

	return dedupeIDs(append(fromIDs, fromNames...)), nil
}

// mergeUnknownGroupRefs folds the outcomes of the id and name checks into a
// single error so the caller learns the full missing subset at once.
func mergeUnknownGroupRefs(idErr, nameErr error) error {
	var idRef, nameRef *UnknownReferenceError

	idUnknown := errors.As(idErr, &idRef)
	nameUnknown := errors.As(nameErr, &nameRef)

	switch {
	case idErr != nil && !idUnknown:
		return idErr
	case nameErr != nil && !nameUnknown:
		return nameErr
	case idUnknown && nameUnknown:
		return &UnknownReferenceError{Kind: "group", IDs: idRef.IDs, Names: nameRef.Names}
	case idUnknown:
		return idErr
	case nameUnknown:
		return nameErr
	default:
		return nil
	}
}

// replaceUserGroups swaps a user's entire membership set for the given group
// ids. The caller runs it inside the transaction of the surrounding edit so
// delete and insert commit together.
func replaceUserGroups(tx *store.Store, userID uint, groupIDs []uint) error {
	if err := tx.DeleteUserGroupsOfUser(userID); err != nil {
		return err
	}

	links := make([]models.UserGroup, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		links = append(links, models.UserGroup{UserID: userID, GroupID: groupID})
	}

	return tx.CreateUserGroups(links)
}

// replaceGroupPermissions swaps a group's entire permission set for the given
// permission ids. An empty specification clears all permissions; it is not an
// error and not a no-op.
func replaceGroupPermissions(tx *store.Store, groupID uint, permissionIDs []uint) error {
	validated, err := checkPermissionIDs(tx, permissionIDs)
	if err != nil {
		return err
	}

	if err := tx.DeleteGroupPermissionsOfGroup(groupID); err != nil {
		return err
	}

	links := make([]models.GroupPermission, 0, len(validated))
	for _, permissionID := range validated {
		links = append(links, models.GroupPermission{GroupID: groupID, PermissionID: permissionID})
	}

	return tx.CreateGroupPermissions(links)
}
