package rbac

import (
	"github.com/pkg/errors"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// CreateUserInput carries the fields for a new user. GroupIDs and GroupNames
// are optional; with neither given the user joins the default group.
type CreateUserInput struct {
	Name       string
	Surname    string
	Email      string
	Password   string
	GroupIDs   []uint
	GroupNames []string
}

// EditUserInput carries a partial update of a user. Empty fields are left
// unchanged. A new password requires the matching old password.
// ReplaceGroups marks that a group specification was provided at all; with it
// set and both lists empty the user falls back to the default group.
type EditUserInput struct {
	Name          string
	Surname       string
	Email         string
	OldPassword   string
	NewPassword   string
	GroupIDs      []uint
	GroupNames    []string
	ReplaceGroups bool
}

// ListUsers returns the views of all users.
func (s *Service) ListUsers() ([]UserView, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}

	return views, nil
}

// GetUser returns the view of one user.
func (s *Service) GetUser(id uint) (*UserView, error) {
	user, err := s.store.UserWithLinks(id)
	if err != nil {
		return nil, notFound(err)
	}

	view := NewUserView(user)

	return &view, nil
}

// CreateUser validates the input, resolves the group specification and
// persists the user together with its membership links in one transaction.
// Nothing is persisted when group resolution fails.
func (s *Service) CreateUser(in CreateUserInput) (*UserView, error) {
	if in.Name == "" || in.Surname == "" || in.Email == "" || in.Password == "" {
		return nil, errors.Wrap(ErrValidation, "name, surname, email and password are required")
	}

	taken, err := s.store.EmailTaken(in.Email, 0)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, errors.Wrap(ErrConflict, "email is already associated with another user")
	}

	credential, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		Surname:  in.Surname,
		Email:    in.Email,
		Password: credential,
	}

	err = s.store.Transaction(func(tx *store.Store) error {
		groupIDs, errResolve := resolveUserGroupIDs(tx, in.GroupIDs, in.GroupNames)
		if errResolve != nil {
			return errResolve
		}

		if errCreate := tx.Create(&user); errCreate != nil {
			return errCreate
		}

		return replaceUserGroups(tx, user.ID, groupIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(user.ID)
}

// DeleteUser removes a user and its membership links atomically.
func (s *Service) DeleteUser(id uint) error {
	if _, err := s.store.User(id); err != nil {
		return notFound(err)
	}

	return s.store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteUserGroupsOfUser(id); err != nil {
			return err
		}

		return tx.DeleteUser(id)
	})
}

// EditUserGroups replaces a user's entire membership set from a mixed
// id/name specification. On any unknown reference the previous memberships
// stay untouched.
func (s *Service) EditUserGroups(id uint, groupIDs []uint, groupNames []string) (*UserView, error) {
	if _, err := s.store.User(id); err != nil {
		return nil, notFound(err)
	}

	err := s.store.Transaction(func(tx *store.Store) error {
		resolved, errResolve := resolveUserGroupIDs(tx, groupIDs, groupNames)
		if errResolve != nil {
			return errResolve
		}

		return replaceUserGroups(tx, id, resolved)
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(id)
}

// EditUserDetails applies a partial update: non-empty fields overwrite the
// stored ones, a new password is verified against the old one, an email
// change is rejected when another user already holds the address, and a
// provided group specification replaces the membership set. Everything
// commits in one transaction.
func (s *Service) EditUserDetails(id uint, in EditUserInput) (*UserView, error) {
	user, err := s.store.User(id)
	if err != nil {
		return nil, notFound(err)
	}

	if in.NewPassword != "" {
		if in.OldPassword == "" {
			return nil, errors.Wrap(ErrValidation, "old password is required to set a new password")
		}

		match, errVerify := s.hasher.Verify(in.OldPassword, user.Password)
		if errVerify != nil {
			return nil, errVerify
		}

		if !match {
			return nil, errors.Wrap(ErrValidation, "old password is incorrect")
		}

		credential, errHash := s.hasher.Hash(in.NewPassword)
		if errHash != nil {
			return nil, errHash
		}

		user.Password = credential
	}

	if in.Name != "" {
		user.Name = in.Name
	}

	if in.Surname != "" {
		user.Surname = in.Surname
	}

	if in.Email != "" {
		taken, errTaken := s.store.EmailTaken(in.Email, id)
		if errTaken != nil {
			return nil, errTaken
		}

		if taken {
			return nil, errors.Wrap(ErrConflict, "email is already associated with another user")
		}

		user.Email = in.Email
	}

	err = s.store.Transaction(func(tx *store.Store) error {
		if errSave := tx.Save(user); errSave != nil {
			return errSave
		}

		if !in.ReplaceGroups {
			return nil
		}

		resolved, errResolve := resolveUserGroupIDs(tx, in.GroupIDs, in.GroupNames)
		if errResolve != nil {
			return errResolve
		}

		return replaceUserGroups(tx, id, resolved)
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(id)
}

// VerifyPassword compares the supplied password against the stored
// credential of the user. A mismatch is reported as a validation error,
// never as a silent success.
func (s *Service) VerifyPassword(id uint, password string) error {
	user, err := s.store.User(id)
	if err != nil {
		return notFound(err)
	}

	match, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return err
	}

	if !match {
		return errors.Wrap(ErrValidation, "incorrect password")
	}

	return nil
}
