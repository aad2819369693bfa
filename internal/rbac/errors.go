package rbac

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the targeted entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrValidation is returned for malformed or missing required input.
	// The caller can fix the request and resubmit.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned on uniqueness violations and when an entity is
	// still referenced by another one.
	ErrConflict = errors.New("conflict")

	// ErrUnknownReference is returned when a referenced id or name does not
	// exist. The concrete error is always an *UnknownReferenceError carrying
	// the exact missing subset.
	ErrUnknownReference = errors.New("unknown reference")
)

// UnknownReferenceError reports precisely which of the requested identifiers
// could not be resolved.
type UnknownReferenceError struct {
	// Kind names the referenced entity, "group" or "permission".
	Kind string
	// IDs is the missing subset of the requested ids.
	IDs []uint
	// Names is the missing subset of the requested names.
	Names []string
}

// Error implements the error interface.
func (e *UnknownReferenceError) Error() string {
	var parts []string

	for _, id := range e.IDs {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	parts = append(parts, e.Names...)

	return fmt.Sprintf("unknown %s reference: %s", e.Kind, strings.Join(parts, ", "))
}

// Unwrap makes the error match ErrUnknownReference via errors.Is.
func (e *UnknownReferenceError) Unwrap() error {
	return ErrUnknownReference
}
