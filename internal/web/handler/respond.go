// Package handler provides the pieces shared by all API handlers: the route
// group root, the id parameter parsing and the mapping of service errors onto
// HTTP status codes.
package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pentagon-api/pentagon-api/internal/rbac"
)

// ErrorBody is the JSON payload of every failed request. The missing lists
// are only set for unknown reference errors and name the exact subset of
// referenced entities that does not exist.
type ErrorBody struct {
	Error        string   `json:"error"`
	MissingIDs   []uint   `json:"missingIds,omitempty"`
	MissingNames []string `json:"missingNames,omitempty"`
}

// ParseID parses the :id route parameter into an entity id.
func ParseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// BadRequest replies 400 with the given message.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: msg})
}

// Error maps a service error onto its HTTP status and replies with the JSON
// error body. Errors outside the service taxonomy are logged and answered
// with an opaque 500.
func Error(c *fiber.Ctx, err error) error {
	body := ErrorBody{Error: err.Error()}

	var refErr *rbac.UnknownReferenceError

	switch {
	case errors.As(err, &refErr):
		body.MissingIDs = refErr.IDs
		body.MissingNames = refErr.Names

		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	case errors.Is(err, rbac.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(body)
	case errors.Is(err, rbac.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(body)
	case errors.Is(err, rbac.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(body)
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled service error")

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Error: "internal server error"})
	}
}
