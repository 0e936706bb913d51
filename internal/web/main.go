// Package web wires the fiber application: middleware, session
// resolution, and route registration. Handlers stay thin; all business
// rules live in internal/service.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/config"
	fiberlogger "github.com/portalbox-admin/portalbox-admin/internal/logger/adapter/fiber"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler/api"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler/login"
	"github.com/portalbox-admin/portalbox-admin/internal/web/handler/logout"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	store        storage.Storage
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness probe first
	// so the LB drains this instance before the listener stops.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, store storage.Storage) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "Portalbox-Admin",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: handler.CheckAlivePath,
	}))

	service := &Service{
		cfg:   cfg,
		App:   app,
		db:    db,
		store: store,
	}

	app.Get(handler.CheckAlivePath, service.checkAlive)

	// Resolve the request identity once, up front. Anonymous requests
	// carry a session with a nil user; services decide what that means.
	app.Use(service.resolveSession)

	login.Handler.Init(app, cfg, db, store)
	logout.Handler.Init(app, cfg, store)
	api.Handler.Init(app, cfg, db)

	service.alive.Store(true)

	return service
}

// checkAlive reports liveness for load balancer probes.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

// resolveSession builds the per-request session resolver from the bearer
// token and the login cookie.
func (s *Service) resolveSession(c *fiber.Ctx) error {
	sess := session.New(s.db, s.store)

	bearer := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	sess.Resolve(bearer, c.Cookies(handler.SessionCookieName))

	c.Locals(handler.LocalsSessionKey, sess)

	return c.Next()
}
