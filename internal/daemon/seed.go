package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/config"
	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

const (
	adminRoleName           = "admin"
	unauthenticatedRoleName = "unauthenticated"
)

// seed creates the system roles and the initial admin account. The admin
// role must land on its well-known id because API keys synthesize users
// against it.
func seed(_ *config.Config, db *gorm.DB) {
	roles := stores.NewRoleStore(db)
	users := stores.NewUserStore(db)

	if _, err := roles.Read(session.AdminRoleID); err != nil {
		adminRole := &models.Role{
			ID:          session.AdminRoleID,
			Name:        adminRoleName,
			Description: "System role holding every permission",
			IsSystem:    true,
			Permissions: perms.All(),
		}
		if err := roles.Create(adminRole); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin role")
		}
	}

	if _, err := roles.ReadByName(unauthenticatedRoleName); err != nil {
		unauthRole := &models.Role{
			Name:        unauthenticatedRoleName,
			Description: "System role holding no permissions",
			IsSystem:    true,
		}
		if err := roles.Create(unauthRole); err != nil {
			log.Fatal().Err(err).Msg("failed to seed unauthenticated role")
		}
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		admin := &models.User{
			Active:   true,
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: models.HashPassword("changeme"),
			RoleID:   session.AdminRoleID,
		}
		if err := users.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin user")
		}

		log.Warn().Msg("seeded default admin user; change its password")
	}
}
