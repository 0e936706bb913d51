package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerChargeRoutes(app *fiber.App) {
	app.Route(Prefix+"/charges", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createCharge)
		router.Get(handler.RouterRootPath, s.listCharges)
		router.Get("/:id", s.readCharge)
		router.Put("/:id", s.updateCharge)
	})
}

func (s *Service) createCharge(c *fiber.Ctx) error {
	var req service.ChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	charge, err := s.charges.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(charge)
}

func (s *Service) readCharge(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	charge, err := s.charges.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(charge)
}

func (s *Service) updateCharge(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.ChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	charge, err := s.charges.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(charge)
}

func (s *Service) listCharges(c *fiber.Ctx) error {
	var q query.Charge

	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "user_id is invalid"})
		}

		q.UserID = &userID
	}

	if v := c.Query("equipment_id"); v != "" {
		equipmentID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "equipment_id is invalid"})
		}

		id := uint(equipmentID)
		q.EquipmentID = &id
	}

	charges, err := s.charges.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(charges)
}
