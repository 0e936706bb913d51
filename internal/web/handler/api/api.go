// Package api registers the JSON API routes. Each handler parses the
// request, hands it to the matching service with the request session,
// and renders the entity or the mapped error.
package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/config"
	"github.com/portalbox-admin/portalbox-admin/internal/service"
)

// Prefix is the path prefix of all API routes.
const Prefix = "/api"

// Service is the API handler service.
type Service struct {
	cfg            *config.Config
	apiKeys        *service.APIKeyService
	roles          *service.RoleService
	users          *service.UserService
	cards          *service.CardService
	cardTypes      *service.CardTypeService
	chargePolicies *service.ChargePolicyService
	charges        *service.ChargeService
	payments       *service.PaymentService
	equipmentTypes *service.EquipmentTypeService
	equipment      *service.EquipmentService
	locations      *service.LocationService
	events         *service.LoggedEventService
	badges         *service.BadgeService
}

// Handler is the API handler.
var Handler = Service{}

// Init initializes the API handler and registers all routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.cfg = cfg
	s.apiKeys = service.NewAPIKeyService(db)
	s.roles = service.NewRoleService(db)
	s.users = service.NewUserService(db)
	s.cards = service.NewCardService(db)
	s.cardTypes = service.NewCardTypeService()
	s.chargePolicies = service.NewChargePolicyService()
	s.charges = service.NewChargeService(db)
	s.payments = service.NewPaymentService(db)
	s.equipmentTypes = service.NewEquipmentTypeService(db)
	s.equipment = service.NewEquipmentService(db)
	s.locations = service.NewLocationService(db)
	s.events = service.NewLoggedEventService(db)
	s.badges = service.NewBadgeService(db, service.DirImageLister{Dir: cfg.Badges.ImageDir})

	s.registerAPIKeyRoutes(app)
	s.registerRoleRoutes(app)
	s.registerUserRoutes(app)
	s.registerCardRoutes(app)
	s.registerEnumRoutes(app)
	s.registerChargeRoutes(app)
	s.registerPaymentRoutes(app)
	s.registerEquipmentTypeRoutes(app)
	s.registerLocationRoutes(app)
	s.registerLogRoutes(app)
	s.registerBadgeRoutes(app)
	s.registerEquipmentRoutes(app)

	return nil
}

// paramUint parses a numeric path parameter.
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, service.InvalidArgumentError{Message: name + " is invalid"}
	}

	return uint(v), nil
}

// paramUint64 parses a wide numeric path parameter (user ids, card
// serials, ledger ids).
func paramUint64(c *fiber.Ctx, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, service.InvalidArgumentError{Message: name + " is invalid"}
	}

	return v, nil
}

// bearerValue extracts the Authorization bearer payload. Device
// endpoints carry the card serial here.
func bearerValue(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}
