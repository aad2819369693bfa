package daemon

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pentagon-api/pentagon-api/internal/db/models"
	"github.com/pentagon-api/pentagon-api/internal/security"
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// seedPassword is the initial credential of every seeded user.
const seedPassword = "admin"

var (
	seedPermissionNames = []string{"Level_1", "Level_2", "Level_3", "Level_4", "Level_5"}

	seedGroupNames = []string{
		"POTUS", "General", "CIA Director", "CIA Agent", "Military", "Administration", "Civilian",
	}

	seedUsers = []models.User{
		{Name: "John", Surname: "Doe"},
		{Name: "Jane", Surname: "Smith"},
		{Name: "Robert", Surname: "Johnson"},
		{Name: "Michael", Surname: "Williams"},
		{Name: "William", Surname: "Brown"},
		{Name: "David", Surname: "Jones"},
		{Name: "Richard", Surname: "Garcia"},
		{Name: "Joseph", Surname: "Miller"},
		{Name: "Charles", Surname: "Davis"},
		{Name: "Thomas", Surname: "Rodriguez"},
	}

	// seedMemberships maps user index to group index (both zero-based).
	seedMemberships = []int{0, 1, 1, 2, 3, 3, 4, 4, 5, 6}

	// seedGrants maps group index to the number of clearance levels it
	// holds, starting at Level_1.
	seedGrants = []int{5, 4, 4, 3, 2, 1, 1}
)

// seed fills an empty database with the initial clearance hierarchy and a
// set of dummy users. A database that already holds users is left untouched.
func seed(st *store.Store, hasher security.PasswordHasher) error {
	count, err := st.CountUsers()
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding initial data")

	credential, err := hasher.Hash(seedPassword)
	if err != nil {
		return err
	}

	return st.Transaction(func(tx *store.Store) error {
		permissions := make([]models.Permission, len(seedPermissionNames))
		for i, name := range seedPermissionNames {
			permissions[i] = models.Permission{Name: name}
			if err := tx.Create(&permissions[i]); err != nil {
				return err
			}
		}

		groups := make([]models.Group, len(seedGroupNames))
		for i, name := range seedGroupNames {
			groups[i] = models.Group{Name: name}
			if err := tx.Create(&groups[i]); err != nil {
				return err
			}
		}

		users := make([]models.User, len(seedUsers))
		for i, user := range seedUsers {
			user.Email = fmt.Sprintf("%s%d@example.com", strings.ToLower(user.Name), i+1)
			user.Password = credential

			users[i] = user
			if err := tx.Create(&users[i]); err != nil {
				return err
			}
		}

		memberships := make([]models.UserGroup, 0, len(seedMemberships))
		for userIdx, groupIdx := range seedMemberships {
			memberships = append(memberships, models.UserGroup{
				UserID:  users[userIdx].ID,
				GroupID: groups[groupIdx].ID,
			})
		}

		if err := tx.CreateUserGroups(memberships); err != nil {
			return err
		}

		grants := make([]models.GroupPermission, 0, 20)
		for groupIdx, levels := range seedGrants {
			for level := 0; level < levels; level++ {
				grants = append(grants, models.GroupPermission{
					GroupID:      groups[groupIdx].ID,
					PermissionID: permissions[level].ID,
				})
			}
		}

		return tx.CreateGroupPermissions(grants)
	})
}
