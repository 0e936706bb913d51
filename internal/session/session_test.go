package session

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	memory "github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

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
	))

	require.NoError(t, stores.NewRoleStore(db).Create(&models.Role{
		ID:          AdminRoleID,
		Name:        "admin",
		IsSystem:    true,
		Permissions: perms.All(),
	}))

	return db
}

func TestResolve_APIKey(t *testing.T) {
	db := testDB(t)
	require.NoError(t, stores.NewAPIKeyStore(db).Create(&models.APIKey{
		Name:  "ci",
		Token: "secret-token",
	}))

	sess := New(db, memory.New())
	sess.Resolve("secret-token", "")

	user := sess.AuthenticatedUser()
	require.NotNil(t, user)
	assert.Equal(t, "API: ci", user.Name)
	assert.Equal(t, AdminRoleID, user.RoleID)
	assert.True(t, user.Role.HasPermission(perms.CreateEquipment))
}

func TestResolve_UnknownBearerFallsThrough(t *testing.T) {
	db := testDB(t)

	sess := New(db, memory.New())
	sess.Resolve("no-such-token", "")

	assert.Nil(t, sess.AuthenticatedUser())
}

func TestResolve_CookieSession(t *testing.T) {
	db := testDB(t)
	users := stores.NewUserStore(db)
	user := &models.User{Active: true, Name: "Alice", Email: "alice@example.com", RoleID: AdminRoleID}
	require.NoError(t, users.Create(user))

	store := memory.New()
	sessionID, err := GenerateSessionID()
	require.NoError(t, err)

	data := &Data{UserID: user.ID}
	require.NoError(t, data.Write(store, sessionID, time.Hour))

	sess := New(db, store)
	sess.Resolve("", sessionID)

	resolved := sess.AuthenticatedUser()
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "Alice", resolved.Name)
}

func TestResolve_InactiveUserIsAnonymous(t *testing.T) {
	db := testDB(t)
	users := stores.NewUserStore(db)
	user := &models.User{Active: false, Name: "Gone", Email: "gone@example.com", RoleID: AdminRoleID}
	require.NoError(t, users.Create(user))

	store := memory.New()
	sessionID, err := GenerateSessionID()
	require.NoError(t, err)

	data := &Data{UserID: user.ID}
	require.NoError(t, data.Write(store, sessionID, time.Hour))

	sess := New(db, store)
	sess.Resolve("", sessionID)

	assert.Nil(t, sess.AuthenticatedUser())
}

func TestResolve_AnonymousAndMemoized(t *testing.T) {
	db := testDB(t)

	sess := New(db, memory.New())
	sess.Resolve("", "")
	assert.Nil(t, sess.AuthenticatedUser())

	// a second resolve must not change the memoized answer
	sess.Resolve("anything", "anything")
	assert.Nil(t, sess.AuthenticatedUser())
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
