// Package login handles cookie-based web login.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/config"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
)

const (
	// Path is the path to the login endpoint.
	Path = "/login"

	invalidCredentialsMsg = "Invalid email or password"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service is the login handler service.
type Service struct {
	cfg   *config.Config
	users *stores.UserStore
	store storage.Storage
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store storage.Storage) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.cfg = cfg
	s.users = stores.NewUserStore(db)
	s.store = store

	app.Post(Path, s.Post)

	return nil
}

// Post handles the login request. Unknown emails, wrong passwords, and
// inactive accounts all get the same answer.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	user, err := s.users.ReadByEmail(creds.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": invalidCredentialsMsg})
	}

	if !user.Active {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": invalidCredentialsMsg})
	}

	if !user.VerifyPassword(creds.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": invalidCredentialsMsg})
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	data := &session.Data{UserID: user.ID}
	if err = data.Write(s.store, sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	cookieSettings := &fiber.Cookie{
		Name:     handler.SessionCookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
