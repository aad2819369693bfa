package rbac

import (
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// dedupeIDs removes duplicates while keeping first-seen order.
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// dedupeNames removes duplicates while keeping first-seen order.
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// checkGroupIDs verifies every requested group id exists. It returns the
// deduplicated requested ids, or an *UnknownReferenceError naming the exact
// missing subset. An empty request trivially validates.
func checkGroupIDs(tx *store.Store, requested []uint) ([]uint, error) {
	requested = dedupeIDs(requested)
	if len(requested) == 0 {
		return nil, nil
	}

	existing, err := tx.ExistingGroupIDs(requested)
	if err != nil {
		return nil, err
	}

	if missing := missingIDs(requested, existing); len(missing) > 0 {
		return nil, &UnknownReferenceError{Kind: "group", IDs: missing}
	}

	return requested, nil
}

// checkGroupNames resolves every requested group name to its group id.
// It returns the ids in request order, or an *UnknownReferenceError naming
// the exact missing subset.
func checkGroupNames(tx *store.Store, requested []string) ([]uint, error) {
	requested = dedupeNames(requested)
	if len(requested) == 0 {
		return nil, nil
	}

	groups, err := tx.GroupsByName(requested)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]uint, len(groups))
	for _, group := range groups {
		byName[group.Name] = group.ID
	}

	var (
		ids     = make([]uint, 0, len(requested))
		missing []string
	)

	for _, name := range requested {
		id, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		ids = append(ids, id)
	}

	if len(missing) > 0 {
		return nil, &UnknownReferenceError{Kind: "group", Names: missing}
	}

	return ids, nil
}

// checkPermissionIDs verifies every requested permission id exists, in the
// same fashion as checkGroupIDs.
func checkPermissionIDs(tx *store.Store, requested []uint) ([]uint, error) {
	requested = dedupeIDs(requested)
	if len(requested) == 0 {
		return nil, nil
	}

	existing, err := tx.ExistingPermissionIDs(requested)
	if err != nil {
		return nil, err
	}

	if missing := missingIDs(requested, existing); len(missing) > 0 {
		return nil, &UnknownReferenceError{Kind: "permission", IDs: missing}
	}

	return requested, nil
}

// missingIDs returns the requested ids absent from existing, in request order.
func missingIDs(requested, existing []uint) []uint {
	found := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []uint

	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}
