// Package daemon assembles the running service: database, migrations,
// seed data, session storage, and the web service.
package daemon

import (
	"fmt"

	sessionmysql "github.com/gofiber/storage/mysql/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/config"
	"github.com/portalbox-admin/portalbox-admin/internal/db/dsn"
	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormmysql.Open(dsn.Create(cfg))

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Role{},
		&models.RolePermission{},
		&models.User{},
		&models.UserAuthorization{},
		&models.APIKey{},
		&models.Location{},
		&models.EquipmentType{},
		&models.Equipment{},
		&models.Card{},
		&models.LoggedEvent{},
		&models.Charge{},
		&models.Payment{},
		&models.BadgeRule{},
		&models.BadgeLevel{},
		&models.BadgeRuleEquipmentType{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	// Cookie sessions live in the same database as everything else. A
	// store that cannot start means nobody can log in, so give up early.
	sessionStorage := sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})
	if sessionStorage == nil {
		log.Fatal().Msg("failed to initialize session storage")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, sessionStorage),
	}
}
