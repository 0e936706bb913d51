package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerCardRoutes(app *fiber.App) {
	app.Route(Prefix+"/cards", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createCard)
		router.Get(handler.RouterRootPath, s.listCards)
		router.Get("/:id", s.readCard)
		router.Put("/:id", s.updateCard)
	})
}

func (s *Service) createCard(c *fiber.Ctx) error {
	var req service.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	card, err := s.cards.Create(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

func (s *Service) readCard(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	card, err := s.cards.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(card)
}

func (s *Service) updateCard(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	card, err := s.cards.Update(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(card)
}

func (s *Service) listCards(c *fiber.Ctx) error {
	var q query.Card

	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "user_id is invalid"})
		}

		q.UserID = &userID
	}

	if v := c.Query("equipment_type_id"); v != "" {
		typeID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "equipment_type_id is invalid"})
		}

		id := uint(typeID)
		q.EquipmentTypeID = &id
	}

	if v := c.Query("type_id"); v != "" {
		typeID, err := strconv.Atoi(v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "type_id is invalid"})
		}

		t := models.CardType(typeID)
		q.TypeID = &t
	}

	cards, err := s.cards.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(cards)
}
