package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

func TestCardService_CreateVariants(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewCardService(db)

	equipmentType := &models.EquipmentType{
		Name:           "Laser Cutter",
		ChargeRate:     "0.25",
		ChargePolicyID: models.ChargePolicyPerMinute,
	}
	require.NoError(t, stores.NewEquipmentTypeStore(db).Create(equipmentType))

	member := createUser(t, db, "Member", "member@example.com", 1)

	t.Run("shutdown card carries no payload", func(t *testing.T) {
		card, err := svc.Create(sess, CardRequest{ID: 100, TypeID: int(models.CardTypeShutdown)})
		require.NoError(t, err)
		assert.Nil(t, card.EquipmentTypeID)
		assert.Nil(t, card.UserID)
	})

	t.Run("training card requires equipment type", func(t *testing.T) {
		_, err := svc.Create(sess, CardRequest{ID: 101, TypeID: int(models.CardTypeTraining)})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))

		card, err := svc.Create(sess, CardRequest{
			ID:              101,
			TypeID:          int(models.CardTypeTraining),
			EquipmentTypeID: &equipmentType.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, card.EquipmentTypeID)
		assert.Equal(t, equipmentType.ID, *card.EquipmentTypeID)
	})

	t.Run("user card requires user", func(t *testing.T) {
		_, err := svc.Create(sess, CardRequest{ID: 102, TypeID: int(models.CardTypeUser)})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))

		card, err := svc.Create(sess, CardRequest{
			ID:     102,
			TypeID: int(models.CardTypeUser),
			UserID: &member.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, card.UserID)
		assert.Equal(t, member.ID, *card.UserID)
	})

	t.Run("shutdown card rejects stray payload", func(t *testing.T) {
		_, err := svc.Create(sess, CardRequest{
			ID:     103,
			TypeID: int(models.CardTypeShutdown),
			UserID: &member.ID,
		})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("unknown card type rejected", func(t *testing.T) {
		_, err := svc.Create(sess, CardRequest{ID: 104, TypeID: 9})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})
}

func TestCardService_ListOwnNarrowing(t *testing.T) {
	db := testDB(t)
	admin := adminSession(t, db)
	svc := NewCardService(db)

	role := createRole(t, db, "member", perms.ListOwnCards)
	alice := createUser(t, db, "Alice", "alice@example.com", role.ID)
	bob := createUser(t, db, "Bob", "bob@example.com", role.ID)

	_, err := svc.Create(admin, CardRequest{ID: 201, TypeID: int(models.CardTypeUser), UserID: &alice.ID})
	require.NoError(t, err)
	_, err = svc.Create(admin, CardRequest{ID: 202, TypeID: int(models.CardTypeUser), UserID: &bob.ID})
	require.NoError(t, err)

	// Alice only holds LIST_OWN_CARDS; asking for Bob's cards still
	// yields her own.
	cards, err := svc.ReadAll(loginAs(t, db, alice.ID), query.Card{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, uint64(201), cards[0].ID)

	// The admin sees everything.
	cards, err = svc.ReadAll(admin, query.Card{})
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestCardService_ReadIdempotent(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewCardService(db)

	_, err := svc.Create(sess, CardRequest{ID: 300, TypeID: int(models.CardTypeProxy)})
	require.NoError(t, err)

	first, err := svc.Read(sess, 300)
	require.NoError(t, err)

	second, err := svc.Read(sess, 300)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
