package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerEquipmentTypeRoutes(app *fiber.App) {
	app.Route(Prefix+"/equipmenttypes", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createEquipmentType)
		router.Get(handler.RouterRootPath, s.listEquipmentTypes)
		router.Get("/:id", s.readEquipmentType)
		router.Put("/:id", s.updateEquipmentType)
		router.Delete("/:id", s.deleteEquipmentType)
	})
}

func (s *Service) createEquipmentType(c *fiber.Ctx) error {
	var req service.EquipmentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipmentType, err := s.equipmentTypes.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(equipmentType)
}

func (s *Service) readEquipmentType(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	equipmentType, err := s.equipmentTypes.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipmentType)
}

func (s *Service) updateEquipmentType(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.EquipmentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipmentType, err := s.equipmentTypes.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipmentType)
}

func (s *Service) deleteEquipmentType(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.equipmentTypes.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listEquipmentTypes(c *fiber.Ctx) error {
	types, err := s.equipmentTypes.ReadAll(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(types)
}
