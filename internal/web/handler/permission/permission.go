// Package permission provides the JSON API handlers for permission management.
package permission

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pentagon-api/pentagon-api/internal/config"
	"github.com/pentagon-api/pentagon-api/internal/rbac"
	"github.com/pentagon-api/pentagon-api/internal/web/handler"
)

// Path is the base path for permission management.
const Path = handler.RootPath + "/permission"

// Service provides CRUD operations for permissions.
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
	app.Delete(Path+"/:id", s.Delete)
}

type createRequest struct {
	PermissionName string `json:"permissionName" validate:"required"`
}

// List returns all permissions.
func (s *Service) List(c *fiber.Ctx) error {
	views, err := s.rbac.ListPermissions()
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(views)
}

// Get returns a single permission by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid permission id")
	}

	view, err := s.rbac.GetPermission(id)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// Create creates a permission with a unique name.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest

	if err := c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	view, err := s.rbac.CreatePermission(req.PermissionName)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// Delete removes the permission unless a group still grants it.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid permission id")
	}

	if err = s.rbac.DeletePermission(id); err != nil {
		return handler.Error(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
