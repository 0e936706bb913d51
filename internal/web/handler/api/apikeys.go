package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerAPIKeyRoutes(app *fiber.App) {
	app.Route(Prefix+"/apikeys", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createAPIKey)
		router.Get(handler.RouterRootPath, s.listAPIKeys)
		router.Get("/:id", s.readAPIKey)
		router.Put("/:id", s.updateAPIKey)
		router.Delete("/:id", s.deleteAPIKey)
	})
}

func (s *Service) createAPIKey(c *fiber.Ctx) error {
	var req service.APIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	key, err := s.apiKeys.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(key)
}

func (s *Service) readAPIKey(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	key, err := s.apiKeys.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(key)
}

func (s *Service) updateAPIKey(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.APIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	key, err := s.apiKeys.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(key)
}

func (s *Service) deleteAPIKey(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.apiKeys.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listAPIKeys(c *fiber.Ctx) error {
	keys, err := s.apiKeys.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(keys)
}
