// Package handler holds the pieces shared by all web handlers: route
// constants, session retrieval, and the error-to-status mapping.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalbox-admin/portalbox-admin/internal/service"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// Session returns the per-request session resolver stashed by the web
// service middleware. A missing resolver yields an anonymous session
// rather than a panic.
func Session(c *fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(LocalsSessionKey).(*session.Session); ok {
		return sess
	}

	return &session.Session{}
}

// RenderError writes a service error as a JSON body with the mapped
// HTTP status code.
func RenderError(c *fiber.Ctx, err error) error {
	return c.Status(service.StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
