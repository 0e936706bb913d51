package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

// registerEnumRoutes covers the two closed enumerations served without a
// backing table: card types and charge policies.
func (s *Service) registerEnumRoutes(app *fiber.App) {
	app.Route(Prefix+"/cardtypes", func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.listCardTypes)
		router.Get("/:id", s.readCardType)
	})

	app.Route(Prefix+"/chargepolicies", func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.listChargePolicies)
		router.Get("/:id", s.readChargePolicy)
	})
}

func (s *Service) listCardTypes(c *fiber.Ctx) error {
	types, err := s.cardTypes.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(types)
}

func (s *Service) readCardType(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "id is invalid"})
	}

	view, err := s.cardTypes.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(view)
}

func (s *Service) listChargePolicies(c *fiber.Ctx) error {
	policies, err := s.chargePolicies.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(policies)
}

func (s *Service) readChargePolicy(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "id is invalid"})
	}

	view, err := s.chargePolicies.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(view)
}
