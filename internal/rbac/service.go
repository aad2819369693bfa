// Package rbac implements the lifecycle of users, groups and permissions:
// reference validation, membership resolution with the default-group
// fallback, permission aggregation and the mutation sequencing that keeps
// the link tables free of dangling references.
package rbac

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pentagon-api/pentagon-api/internal/security"
	"github.com/pentagon-api/pentagon-api/internal/store"
)

// Service orchestrates create, edit and delete for all entity types.
// Every mutating operation validates its references first and commits all
// row changes in a single transaction; no partial state survives a failure.
type Service struct {
	store  *store.Store
	hasher security.PasswordHasher
}

// NewService creates an rbac service on top of the entity store.
func NewService(st *store.Store, hasher security.PasswordHasher) *Service {
	return &Service{store: st, hasher: hasher}
}

// notFound maps the store's record-not-found onto the service taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}
