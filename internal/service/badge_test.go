package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

// recordUses appends n successful authentications for the card on the
// equipment.
func recordUses(t *testing.T, db *gorm.DB, equipmentID uint, cardID uint64, n int) {
	t.Helper()

	events := stores.NewLoggedEventStore(db)
	for i := 0; i < n; i++ {
		require.NoError(t, events.Create(&models.LoggedEvent{
			Time:        time.Now(),
			TypeID:      models.EventSuccessfulAuthentication,
			EquipmentID: equipmentID,
			CardID:      cardID,
		}))
	}
}

func TestBadgeService_RuleCRUD(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	sess := adminSession(t, db)
	svc := NewBadgeService(db, DirImageLister{Dir: t.TempDir()})

	created, err := svc.CreateRule(sess, BadgeRuleRequest{
		Name:             "Machinist",
		EquipmentTypeIDs: []uint{shop.trainedType.ID},
		Levels: []BadgeLevelRequest{
			{Name: "Bronze", UsesThreshold: 5, Image: "bronze.png"},
			{Name: "Silver", UsesThreshold: 25, Image: "silver.png"},
		},
	})
	require.NoError(t, err)

	loaded, err := svc.ReadRule(sess, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Machinist", loaded.Name)
	assert.Equal(t, []uint{shop.trainedType.ID}, loaded.EquipmentTypeIDs)
	require.Len(t, loaded.Levels, 2)
	assert.Equal(t, "Bronze", loaded.Levels[0].Name)

	_, err = svc.CreateRule(sess, BadgeRuleRequest{Name: "Empty"})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	require.NoError(t, svc.DeleteRule(sess, created.ID))

	_, err = svc.ReadRule(sess, created.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestBadgeService_BadgesForUser(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	admin := adminSession(t, db)
	svc := NewBadgeService(db, DirImageLister{Dir: t.TempDir()})

	_, err := svc.CreateRule(admin, BadgeRuleRequest{
		Name:             "Machinist",
		EquipmentTypeIDs: []uint{shop.trainedType.ID},
		Levels: []BadgeLevelRequest{
			{Name: "Bronze", UsesThreshold: 5, Image: "bronze.png"},
			{Name: "Silver", UsesThreshold: 25, Image: "silver.png"},
			{Name: "Gold", UsesThreshold: 100, Image: "gold.png"},
		},
	})
	require.NoError(t, err)

	role := createRole(t, db, "member", perms.ListOwnBadges)
	member := createUser(t, db, "Member", "member@example.com", role.ID)
	require.NoError(t, stores.NewCardStore(db).Create(models.NewUserCard(2001, member.ID)))

	t.Run("below the lowest threshold earns nothing", func(t *testing.T) {
		recordUses(t, db, shop.trainedDevice.ID, 2001, 4)

		badges, err := svc.BadgesForUser(loginAs(t, db, member.ID), member.ID)
		require.NoError(t, err)
		assert.Empty(t, badges)
	})

	t.Run("highest qualifying level wins", func(t *testing.T) {
		recordUses(t, db, shop.trainedDevice.ID, 2001, 26)

		badges, err := svc.BadgesForUser(loginAs(t, db, member.ID), member.ID)
		require.NoError(t, err)
		require.Len(t, badges, 1)
		assert.Equal(t, "Machinist", badges[0].RuleName)
		assert.Equal(t, "Silver", badges[0].LevelName)
		assert.Equal(t, "silver.png", badges[0].Image)
		assert.Equal(t, int64(30), badges[0].Uses)
	})

	t.Run("uses on other equipment types do not count", func(t *testing.T) {
		recordUses(t, db, shop.openDevice.ID, 2001, 100)

		badges, err := svc.BadgesForUser(loginAs(t, db, member.ID), member.ID)
		require.NoError(t, err)
		require.Len(t, badges, 1)
		assert.Equal(t, "Silver", badges[0].LevelName)
	})

	t.Run("own-badge permission does not extend to other users", func(t *testing.T) {
		other := createUser(t, db, "Other", "other@example.com", role.ID)

		_, err := svc.BadgesForUser(loginAs(t, db, member.ID), other.ID)
		require.Error(t, err)
		assert.True(t, IsAuthorization(err))
	})
}

func TestDirImageLister(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"silver.png", "bronze.png", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	names, err := DirImageLister{Dir: dir}.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"bronze.png", "silver.png"}, names)
}
