package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

// registerDevice is the body of a device self-registration request.
type registerDevice struct {
	MACAddress string `json:"mac_address"`
}

// deviceStatus is the body of a device status report.
type deviceStatus struct {
	TypeID int `json:"type_id"`
}

func (s *Service) registerEquipmentRoutes(app *fiber.App) {
	app.Route(Prefix+"/equipment", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createEquipment)
		router.Get(handler.RouterRootPath, s.listEquipment)

		// Device protocol. These authenticate with a card serial in the
		// bearer header, not a web session or API key.
		router.Post("/register", s.registerDevice)
		router.Post("/:id/activate", s.activateEquipment)
		router.Post("/:id/deactivate", s.deactivateEquipment)
		router.Post("/:id/status", s.reportEquipmentStatus)

		router.Get("/:id/stats", s.equipmentUsageStats)
		router.Get("/:id", s.readEquipment)
		router.Put("/:id", s.updateEquipment)
		router.Delete("/:id", s.deleteEquipment)
	})
}

func (s *Service) createEquipment(c *fiber.Ctx) error {
	var req service.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipment, err := s.equipment.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(equipment)
}

func (s *Service) readEquipment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	equipment, err := s.equipment.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) updateEquipment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipment, err := s.equipment.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) deleteEquipment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.equipment.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listEquipment(c *fiber.Ctx) error {
	var q query.Equipment

	if v := c.Query("location_id"); v != "" {
		locationID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "location_id is invalid"})
		}

		id := uint(locationID)
		q.LocationID = &id
	}

	if v := c.Query("type_id"); v != "" {
		typeID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "type_id is invalid"})
		}

		id := uint(typeID)
		q.TypeID = &id
	}

	if v := c.Query("in_service"); v != "" {
		inService, err := strconv.ParseBool(v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "in_service is invalid"})
		}

		q.InService = &inService
	}

	q.MACAddress = c.Query("mac_address")

	equipment, err := s.equipment.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) registerDevice(c *fiber.Ctx) error {
	var req registerDevice
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipment, err := s.equipment.Register(bearerValue(c), req.MACAddress)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(equipment)
}

func (s *Service) activateEquipment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	equipment, err := s.equipment.Activate(bearerValue(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) deactivateEquipment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	equipment, err := s.equipment.Deactivate(bearerValue(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) reportEquipmentStatus(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req deviceStatus
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	equipment, err := s.equipment.ChangeStatus(id, models.LoggedEventType(req.TypeID), c.IP())
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(equipment)
}

func (s *Service) equipmentUsageStats(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	stats, err := s.events.UsageStatsForEquipment(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(stats)
}
