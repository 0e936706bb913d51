package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerRoleRoutes(app *fiber.App) {
	app.Route(Prefix+"/roles", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createRole)
		router.Get(handler.RouterRootPath, s.listRoles)
		router.Get("/:id", s.readRole)
		router.Put("/:id", s.updateRole)
		router.Delete("/:id", s.deleteRole)
	})
}

func (s *Service) createRole(c *fiber.Ctx) error {
	var req service.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	role, err := s.roles.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(role)
}

func (s *Service) readRole(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	role, err := s.roles.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(role)
}

func (s *Service) updateRole(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	role, err := s.roles.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(role)
}

func (s *Service) deleteRole(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.roles.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listRoles(c *fiber.Ctx) error {
	roles, err := s.roles.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(roles)
}
