package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

func (s *Service) registerLogRoutes(app *fiber.App) {
	app.Route(Prefix+"/logs", func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.listLogs)
		router.Get("/:id", s.readLog)
	})
}

func (s *Service) readLog(c *fiber.Ctx) error {
	id, err := paramUint64(c, "id")
	if err != nil {
		return handler.RenderError(c, err)
	}

	event, err := s.events.Read(handler.Session(c), id)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(event)
}

func (s *Service) listLogs(c *fiber.Ctx) error {
	var q query.LoggedEvent

	if v := c.Query("equipment_id"); v != "" {
		equipmentID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "equipment_id is invalid"})
		}

		id := uint(equipmentID)
		q.EquipmentID = &id
	}

	if v := c.Query("location_id"); v != "" {
		locationID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "location_id is invalid"})
		}

		id := uint(locationID)
		q.LocationID = &id
	}

	if v := c.Query("type_id"); v != "" {
		typeID, err := strconv.Atoi(v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "type_id is invalid"})
		}

		t := models.LoggedEventType(typeID)
		q.TypeID = &t
	}

	if v := c.Query("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "since is invalid"})
		}

		q.Since = &since
	}

	if v := c.Query("until"); v != "" {
		until, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return handler.RenderError(c, service.InvalidArgumentError{Message: "until is invalid"})
		}

		q.Until = &until
	}

	events, err := s.events.ReadAll(handler.Session(c), q)
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(events)
}
