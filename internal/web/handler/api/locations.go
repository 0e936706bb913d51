package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerLocationRoutes(app *fiber.App) {
	app.Route(Prefix+"/locations", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createLocation)
		router.Get(handler.RouterRootPath, s.listLocations)
		router.Get("/:id", s.readLocation)
		router.Put("/:id", s.updateLocation)
		router.Delete("/:id", s.deleteLocation)
	})
}

func (s *Service) createLocation(c *fiber.Ctx) error {
	var req service.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	location, err := s.locations.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(location)
}

func (s *Service) readLocation(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	location, err := s.locations.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(location)
}

func (s *Service) updateLocation(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	location, err := s.locations.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(location)
}

func (s *Service) deleteLocation(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.locations.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listLocations(c *fiber.Ctx) error {
	locations, err := s.locations.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(locations)
}
