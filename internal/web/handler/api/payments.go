package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerPaymentRoutes(app *fiber.App) {
	app.Route(Prefix+"/payments", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createPayment)
		router.Get(handler.RouterRootPath, s.listPayments)
		router.Get("/:id", s.readPayment)
		router.Put("/:id", s.updatePayment)
		router.Delete("/:id", s.deletePayment)
	})
}

func (s *Service) createPayment(c *fiber.Ctx) error {
	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	payment, err := s.payments.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (s *Service) readPayment(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	payment, err := s.payments.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(payment)
}

func (s *Service) updatePayment(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	payment, err := s.payments.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(payment)
}

func (s *Service) deletePayment(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.payments.Delete(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listPayments(c *fiber.Ctx) error {
	var q query.Payment

	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "user_id is invalid"})
		}

		q.UserID = &userID
	}

	payments, err := s.payments.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(payments)
}
