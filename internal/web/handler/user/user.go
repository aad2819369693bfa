// Package user provides the JSON API handlers for user management.
package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pentagon-api/pentagon-api/internal/config"
	"github.com/pentagon-api/pentagon-api/internal/rbac"
	"github.com/pentagon-api/pentagon-api/internal/web/handler"
)

// Path is the base path for user management.
const Path = handler.RootPath + "/user"

// Service provides CRUD operations for users.
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
	app.Put(Path+"/:id", s.Update)
	app.Put(Path+"/:id/groups", s.UpdateGroups)
	app.Post(Path+"/:id/verify-password", s.VerifyPassword)
	app.Delete(Path+"/:id", s.Delete)
}

type createRequest struct {
	Name       string   `json:"name"       validate:"required"`
	Surname    string   `json:"surname"    validate:"required"`
	Email      string   `json:"email"      validate:"required,email"`
	Password   string   `json:"password"   validate:"required"`
	GroupIDs   []uint   `json:"groupIds"`
	GroupNames []string `json:"groupNames"`
}

// updateRequest carries a partial update. The group lists are pointers so
// that an absent list (keep memberships) can be told apart from an empty one
// (reset to the default group).
type updateRequest struct {
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email" validate:"omitempty,email"`
	OldPassword string    `json:"oldPassword"`
	NewPassword string    `json:"newPassword"`
	GroupIDs    *[]uint   `json:"groupIds"`
	GroupNames  *[]string `json:"groupNames"`
}

type groupsRequest struct {
	GroupIDs   []uint   `json:"groupIds"`
	GroupNames []string `json:"groupNames"`
}

type passwordRequest struct {
	Password string `json:"password" validate:"required"`
}

// List returns all users with their resolved group and permission lists.
func (s *Service) List(c *fiber.Ctx) error {
	views, err := s.rbac.ListUsers()
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(views)
}

// Get returns a single user by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid user id")
	}

	view, err := s.rbac.GetUser(id)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// Create creates a user together with its initial group memberships.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest

	if err := c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	view, err := s.rbac.CreateUser(rbac.CreateUserInput{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		Password:   req.Password,
		GroupIDs:   req.GroupIDs,
		GroupNames: req.GroupNames,
	})
	if err != nil {
		return handler.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// Update applies a partial update to the user's details and optionally
// replaces its group memberships.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid user id")
	}

	var req updateRequest

	if err = c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err = s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	in := rbac.EditUserInput{
		Name:          req.Name,
		Surname:       req.Surname,
		Email:         req.Email,
		OldPassword:   req.OldPassword,
		NewPassword:   req.NewPassword,
		ReplaceGroups: req.GroupIDs != nil || req.GroupNames != nil,
	}

	if req.GroupIDs != nil {
		in.GroupIDs = *req.GroupIDs
	}

	if req.GroupNames != nil {
		in.GroupNames = *req.GroupNames
	}

	view, err := s.rbac.EditUserDetails(id, in)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// UpdateGroups replaces the user's group memberships with the given lists.
func (s *Service) UpdateGroups(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid user id")
	}

	var req groupsRequest

	if err = c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	view, err := s.rbac.EditUserGroups(id, req.GroupIDs, req.GroupNames)
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(view)
}

// VerifyPassword checks the given password against the user's credential.
func (s *Service) VerifyPassword(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid user id")
	}

	var req passwordRequest

	if err = c.BodyParser(&req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err = s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	if err = s.rbac.VerifyPassword(id, req.Password); err != nil {
		return handler.Error(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// Delete removes the user and all of its group memberships.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.BadRequest(c, "invalid user id")
	}

	if err = s.rbac.DeleteUser(id); err != nil {
		return handler.Error(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
