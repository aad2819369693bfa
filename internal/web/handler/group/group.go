// Package group provides the JSON API handlers for group management.
package group

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pentagon-api/pentagon-api/internal/config"
	"github.com/pentagon-api/pentagon-api/internal/rbac"
	"github.com/pentagon-api/pentagon-api/internal/web/handler"
)

// Path is the base path for group management.
const Path = handler.RootPath + "/group"

// Service provides CRUD operations for groups.
type Service struct {
	cfg       *config.Config
	rbac      *rbac.Service
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, svc *rbac.Service) {
	if app == nil || cfg == nil || svc == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.rbac = svc
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id/permissions", s.UpdatePermissions)
	app.Delete(Path+"/:id", s.Delete)
}

type createRequest struct {
	GroupName     string `json:"groupName" validate:"required"`
	PermissionIDs []uint `json:"permissionIds"`
}

type permissionsRequest struct {
	PermissionIDs []uint `json:"permissionIds"`
}

// List returns all groups with their permission lists.
func (s *Service) List(c *fiber.Ctx) error {
	views, err := s.rbac.ListGroups()
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(views)
}

// Get returns a single group by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid group id")
	}

	view, err := s.rbac.GetGroup(id)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// Create creates a group with an optional initial permission grant list.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest

	if err := c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	view, err := s.rbac.CreateGroup(req.GroupName, req.PermissionIDs)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdatePermissions replaces the group's permission grants. An empty list
// clears all grants.
func (s *Service) UpdatePermissions(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid group id")
	}

	var req permissionsRequest

	if err = c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	view, err := s.rbac.EditGroupPermissions(id, req.PermissionIDs)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// Delete removes the group, its permission grants and its memberships.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid group id")
	}

	if err = s.rbac.DeleteGroup(id); err != nil {
		return handler.Error(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
