package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	memory "github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// testDB opens an isolated in-memory database with the full schema and
// the seeded system roles.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	roles := stores.NewRoleStore(db)
	require.NoError(t, roles.Create(&models.Role{
		ID:          session.AdminRoleID,
		Name:        "admin",
		IsSystem:    true,
		Permissions: perms.All(),
	}))

	return db
}

// createRole inserts a role with the given permissions.
func createRole(t *testing.T, db *gorm.DB, name string, permissions ...perms.Permission) *models.Role {
	t.Helper()

	role := &models.Role{Name: name, Permissions: permissions}
	require.NoError(t, stores.NewRoleStore(db).Create(role))

	return role
}

// createUser inserts an active user bound to the given role.
func createUser(t *testing.T, db *gorm.DB, name, email string, roleID uint) *models.User {
	t.Helper()

	users := stores.NewUserStore(db)
	user := &models.User{Active: true, Name: name, Email: email, RoleID: roleID}
	require.NoError(t, users.Create(user))

	loaded, err := users.Read(user.ID)
	require.NoError(t, err)

	return loaded
}

// loginAs builds a resolved session for the given user by writing a
// cookie session into an in-memory store, the same path production
// requests take.
func loginAs(t *testing.T, db *gorm.DB, userID uint64) *session.Session {
	t.Helper()

	store := memory.New()
	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)

	data := &session.Data{UserID: userID}
	require.NoError(t, data.Write(store, sessionID, time.Hour))

	sess := session.New(db, store)
	sess.Resolve("", sessionID)
	require.NotNil(t, sess.AuthenticatedUser())

	return sess
}

// anonymous builds a session with no identity.
func anonymous(db *gorm.DB) *session.Session {
	var store storage.Storage = memory.New()

	sess := session.New(db, store)
	sess.Resolve("", "")

	return sess
}

// adminSession seeds an admin user and logs them in.
func adminSession(t *testing.T, db *gorm.DB) *session.Session {
	t.Helper()

	admin := createUser(t, db, "Admin", "admin@example.com", session.AdminRoleID)

	return loginAs(t, db, admin.ID)
}
