package api

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerUserRoutes(app *fiber.App) {
	app.Route(Prefix+"/users", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createUser)
		router.Get(handler.RouterRootPath, s.listUsers)
		router.Post("/import", s.importUsers)
		router.Get("/:id", s.readUser)
		router.Put("/:id", s.updateUser)
		router.Get("/:id/authorizations", s.listUserAuthorizations)
		router.Post("/:id/authorizations/:typeID", s.authorizeUser)
		router.Delete("/:id/authorizations/:typeID", s.deauthorizeUser)
		router.Get("/:id/badges", s.listUserBadges)
	})
}

func (s *Service) createUser(c *fiber.Ctx) error {
	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	user, err := s.users.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Service) readUser(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	user, err := s.users.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(user)
}

func (s *Service) updateUser(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	user, err := s.users.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(user)
}

func (s *Service) listUsers(c *fiber.Ctx) error {
	var q query.User

	if v := c.Query("role_id"); v != "" {
		roleID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "role_id is invalid"})
		}

		id := uint(roleID)
		q.RoleID = &id
	}

	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "active is invalid"})
		}

		q.Active = &active
	}

	q.Search = c.Query("search")

	users, err := s.users.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(users)
}

// importUsers accepts a CSV body: header line, then name,email,role rows.
func (s *Service) importUsers(c *fiber.Ctx) error {
	users, err := s.users.Import(handler.Session(c), bytes.NewReader(c.Body()))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(users)
}

func (s *Service) listUserAuthorizations(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	authorizations, err := s.users.Authorizations(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(authorizations)
}

func (s *Service) authorizeUser(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	typeID, err := paramUint(c, "typeID")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.users.Authorize(handler.Session(c), id, typeID); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) deauthorizeUser(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	typeID, err := paramUint(c, "typeID")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.users.Deauthorize(handler.Session(c), id, typeID); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listUserBadges(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	badges, err := s.badges.BadgesForUser(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(badges)
}
