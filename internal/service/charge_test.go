package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

func TestChargeService_ManualEntry(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	sess := adminSession(t, db)
	svc := NewChargeService(db)

	member := createUser(t, db, "Member", "member@example.com", 1)

	charge, err := svc.Create(sess, ChargeRequest{
		UserID:         member.ID,
		EquipmentID:    shop.trainedDevice.ID,
		Amount:         "2.50",
		ChargePolicyID: int(models.ChargePolicyPerUse),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.50", charge.Amount)
	assert.False(t, charge.Time.IsZero())

	t.Run("malformed amount rejected", func(t *testing.T) {
		_, err := svc.Create(sess, ChargeRequest{
			UserID:         member.ID,
			EquipmentID:    shop.trainedDevice.ID,
			Amount:         "2,50",
			ChargePolicyID: int(models.ChargePolicyPerUse),
		})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("correction switches to the manually adjusted policy", func(t *testing.T) {
		updated, err := svc.Update(sess, charge.ID, ChargeRequest{Amount: "1.75"})
		require.NoError(t, err)
		assert.Equal(t, "1.75", updated.Amount)
		assert.Equal(t, models.ChargePolicyManuallyAdjusted, updated.ChargePolicyID)
	})
}

func TestChargeService_OwnScope(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	admin := adminSession(t, db)
	svc := NewChargeService(db)

	role := createRole(t, db, "member", perms.ListOwnCharges)
	alice := createUser(t, db, "Alice", "alice@example.com", role.ID)
	bob := createUser(t, db, "Bob", "bob@example.com", role.ID)

	aliceCharge, err := svc.Create(admin, ChargeRequest{
		UserID:         alice.ID,
		EquipmentID:    shop.trainedDevice.ID,
		Amount:         "1.00",
		ChargePolicyID: int(models.ChargePolicyPerUse),
	})
	require.NoError(t, err)

	bobCharge, err := svc.Create(admin, ChargeRequest{
		UserID:         bob.ID,
		EquipmentID:    shop.trainedDevice.ID,
		Amount:         "3.00",
		ChargePolicyID: int(models.ChargePolicyPerUse),
	})
	require.NoError(t, err)

	sess := loginAs(t, db, alice.ID)

	// list narrows to the caller's own charges even with a filter for
	// someone else
	charges, err := svc.ReadAll(sess, query.Charge{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, charges, 1)
	assert.Equal(t, aliceCharge.ID, charges[0].ID)

	_, err = svc.Read(sess, aliceCharge.ID)
	require.NoError(t, err)

	_, err = svc.Read(sess, bobCharge.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
}
