package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
)

func TestCreateUserRequiredFields(t *testing.T) {
	s, _ := setupTestService(t)

	testCases := []struct {
		name  string
		input CreateUserInput
	}{
		{
			name:  "missing name",
			input: CreateUserInput{Surname: "Doe", Email: "a@example.com", Password: "pw"},
		},
		{
			name:  "missing surname",
			input: CreateUserInput{Name: "John", Email: "a@example.com", Password: "pw"},
		},
		{
			name:  "missing email",
			input: CreateUserInput{Name: "John", Surname: "Doe", Password: "pw"},
		},
		{
			name:  "missing password",
			input: CreateUserInput{Name: "John", Surname: "Doe", Email: "a@example.com"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := s.CreateUser(tc.input)
			require.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, view)
		})
	}
}

func TestCreateUserDefaultGroupFallback(t *testing.T) {
	s, _ := setupTestService(t)

	view, err := s.CreateUser(CreateUserInput{
		Name:     "John",
		Surname:  "Doe",
		Email:    "john@example.com",
		Password: "admin",
	})
	require.NoError(t, err)

	// exactly one membership, pointing at the lazily created default group
	require.Len(t, view.GroupIDs, 1)
	assert.Equal(t, []string{models.DefaultGroupName}, view.GroupNames)
	assert.Empty(t, view.PermissionIDs)

	// a second user without groups reuses the same default group
	second, err := s.CreateUser(CreateUserInput{
		Name:     "Jane",
		Surname:  "Smith",
		Email:    "jane@example.com",
		Password: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, view.GroupIDs, second.GroupIDs)
}

func TestCreateUserDeduplicatesAcrossIDAndName(t *testing.T) {
	s, _ := setupTestService(t)

	groupID := seedGroup(t, s, "POTUS")

	// the same group supplied by both id and name yields a single link
	view, err := s.CreateUser(CreateUserInput{
		Name:       "John",
		Surname:    "Doe",
		Email:      "john@example.com",
		Password:   "admin",
		GroupIDs:   []uint{groupID},
		GroupNames: []string{"POTUS"},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{groupID}, view.GroupIDs)
	assert.Equal(t, []string{"POTUS"}, view.GroupNames)
}

func TestCreateUserUnknownReferenceAbortsEntirely(t *testing.T) {
	s, _ := setupTestService(t)

	seedGroup(t, s, "POTUS")

	view, err := s.CreateUser(CreateUserInput{
		Name:     "John",
		Surname:  "Doe",
		Email:    "john@example.com",
		Password: "admin",
		GroupIDs: []uint{1, 42},
	})
	require.ErrorIs(t, err, ErrUnknownReference)
	assert.Nil(t, view)

	var refErr *UnknownReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "group", refErr.Kind)
	assert.Equal(t, []uint{42}, refErr.IDs)

	// no user row survived the aborted create
	views, err := s.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCreateUserUnknownGroupName(t *testing.T) {
	s, _ := setupTestService(t)

	view, err := s.CreateUser(CreateUserInput{
		Name:       "John",
		Surname:    "Doe",
		Email:      "john@example.com",
		Password:   "admin",
		GroupNames: []string{"Ghosts"},
	})
	require.ErrorIs(t, err, ErrUnknownReference)
	assert.Nil(t, view)

	var refErr *UnknownReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, []string{"Ghosts"}, refErr.Names)
}

func TestCreateUserReportsFullMissingSubset(t *testing.T) {
	s, _ := setupTestService(t)

	// unknown ids and unknown names surface together in one error
	_, err := s.CreateUser(CreateUserInput{
		Name:       "John",
		Surname:    "Doe",
		Email:      "john@example.com",
		Password:   "admin",
		GroupIDs:   []uint{42},
		GroupNames: []string{"Ghosts"},
	})
	require.ErrorIs(t, err, ErrUnknownReference)

	var refErr *UnknownReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, []uint{42}, refErr.IDs)
	assert.Equal(t, []string{"Ghosts"}, refErr.Names)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _ := setupTestService(t)

	_, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "admin",
	})
	require.NoError(t, err)

	_, err = s.CreateUser(CreateUserInput{
		Name: "Johnny", Surname: "Doe", Email: "john@example.com", Password: "admin",
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestEditUserGroupsReplacesAtomically(t *testing.T) {
	s, _ := setupTestService(t)

	potusID := seedGroup(t, s, "POTUS")
	generalID := seedGroup(t, s, "General")

	created, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "admin",
		GroupIDs: []uint{potusID},
	})
	require.NoError(t, err)

	// replacement with a list containing one nonexistent id fails entirely
	view, err := s.EditUserGroups(created.ID, []uint{generalID, 99}, nil)
	require.ErrorIs(t, err, ErrUnknownReference)
	assert.Nil(t, view)

	// the prior membership is unchanged
	current, err := s.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{potusID}, current.GroupIDs)

	// a valid replacement swaps the whole set
	view, err = s.EditUserGroups(created.ID, []uint{generalID}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{generalID}, view.GroupIDs)

	// an empty specification falls back to the default group
	view, err = s.EditUserGroups(created.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{models.DefaultGroupName}, view.GroupNames)
}

func TestEditUserGroupsNotFound(t *testing.T) {
	s, _ := setupTestService(t)

	_, err := s.EditUserGroups(42, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEditUserDetails(t *testing.T) {
	s, _ := setupTestService(t)

	potusID := seedGroup(t, s, "POTUS")
	generalID := seedGroup(t, s, "General")

	created, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "admin",
		GroupIDs: []uint{potusID},
	})
	require.NoError(t, err)

	t.Run("partial field update keeps the rest", func(t *testing.T) {
		view, errEdit := s.EditUserDetails(created.ID, EditUserInput{Name: "Jonathan"})
		require.NoError(t, errEdit)
		assert.Equal(t, "Jonathan", view.Name)
		assert.Equal(t, "Doe", view.Surname)
		assert.Equal(t, "john@example.com", view.Email)
		assert.Equal(t, []uint{potusID}, view.GroupIDs)
	})

	t.Run("new password requires old one", func(t *testing.T) {
		_, errEdit := s.EditUserDetails(created.ID, EditUserInput{NewPassword: "fresh"})
		require.ErrorIs(t, errEdit, ErrValidation)
	})

	t.Run("wrong old password rejected", func(t *testing.T) {
		_, errEdit := s.EditUserDetails(created.ID, EditUserInput{
			OldPassword: "wrong", NewPassword: "fresh",
		})
		require.ErrorIs(t, errEdit, ErrValidation)
	})

	t.Run("password change verified afterwards", func(t *testing.T) {
		_, errEdit := s.EditUserDetails(created.ID, EditUserInput{
			OldPassword: "admin", NewPassword: "fresh",
		})
		require.NoError(t, errEdit)
		require.NoError(t, s.VerifyPassword(created.ID, "fresh"))
		require.ErrorIs(t, s.VerifyPassword(created.ID, "admin"), ErrValidation)
	})

	t.Run("email conflict with another user", func(t *testing.T) {
		_, errCreate := s.CreateUser(CreateUserInput{
			Name: "Jane", Surname: "Smith", Email: "jane@example.com", Password: "admin",
		})
		require.NoError(t, errCreate)

		_, errEdit := s.EditUserDetails(created.ID, EditUserInput{Email: "jane@example.com"})
		require.ErrorIs(t, errEdit, ErrConflict)
	})

	t.Run("group replacement deduplicates id and name sources", func(t *testing.T) {
		view, errEdit := s.EditUserDetails(created.ID, EditUserInput{
			GroupIDs:      []uint{generalID},
			GroupNames:    []string{"General"},
			ReplaceGroups: true,
		})
		require.NoError(t, errEdit)
		assert.Equal(t, []uint{generalID}, view.GroupIDs)
	})

	t.Run("not found", func(t *testing.T) {
		_, errEdit := s.EditUserDetails(999, EditUserInput{Name: "Nobody"})
		require.ErrorIs(t, errEdit, ErrNotFound)
	})
}

func TestVerifyPassword(t *testing.T) {
	s, _ := setupTestService(t)

	created, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "admin",
	})
	require.NoError(t, err)

	require.NoError(t, s.VerifyPassword(created.ID, "admin"))
	require.ErrorIs(t, s.VerifyPassword(created.ID, "nope"), ErrValidation)
	require.ErrorIs(t, s.VerifyPassword(42, "admin"), ErrNotFound)
}

func TestDeleteUserCascadesMemberships(t *testing.T) {
	s, st := setupTestService(t)

	potusID := seedGroup(t, s, "POTUS")

	created, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "admin",
		GroupIDs: []uint{potusID},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(created.ID))
	require.ErrorIs(t, s.DeleteUser(created.ID), ErrNotFound)

	_, err = s.GetUser(created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// the group survives the member's deletion and has no members left
	group, err := st.Group(potusID)
	require.NoError(t, err)
	assert.Equal(t, "POTUS", group.Name)
}

func TestUserViewNeverContainsPassword(t *testing.T) {
	s, _ := setupTestService(t)

	view, err := s.CreateUser(CreateUserInput{
		Name: "John", Surname: "Doe", Email: "john@example.com", Password: "topsecret",
	})
	require.NoError(t, err)

	// the view type itself has no credential field; make sure the stored
	// credential did not leak into any of the string lists either
	for _, name := range append(view.GroupNames, view.PermissionNames...) {
		assert.NotEqual(t, "topsecret", name)
	}
}
