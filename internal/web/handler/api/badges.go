package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerBadgeRoutes(app *fiber.App) {
	app.Route(Prefix+"/badges/rules", func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.createBadgeRule)
		router.Get(handler.RouterRootPath, s.listBadgeRules)
		router.Get("/:id", s.readBadgeRule)
		router.Put("/:id", s.updateBadgeRule)
		router.Delete("/:id", s.deleteBadgeRule)
	})

	app.Get(Prefix+"/badges/images", s.listBadgeImages)
}

func (s *Service) createBadgeRule(c *fiber.Ctx) error {
	var req service.BadgeRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	rule, err := s.badges.CreateRule(handler.Session(c), req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rule)
}

func (s *Service) readBadgeRule(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	rule, err := s.badges.ReadRule(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(rule)
}

func (s *Service) updateBadgeRule(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	var req service.BadgeRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.RenderError(c, service.InvalidArgumentError{Message: "malformed request body"})
	}

	rule, err := s.badges.UpdateRule(handler.Session(c), id, req)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(rule)
}

func (s *Service) deleteBadgeRule(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	if err := s.badges.DeleteRule(handler.Session(c), id); err != nil {
		return handler.RenderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) listBadgeRules(c *fiber.Ctx) error {
	rules, err := s.badges.ReadAllRules(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(rules)
}

func (s *Service) listBadgeImages(c *fiber.Ctx) error {
	images, err := s.badges.ListImages(handler.Session(c))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(images)
}
