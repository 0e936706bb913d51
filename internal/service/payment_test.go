package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

func TestPaymentService_Ledger(t *testing.T) {
	db := testDB(t)
	admin := adminSession(t, db)
	svc := NewPaymentService(db)

	role := createRole(t, db, "member", perms.ListOwnPayments)
	alice := createUser(t, db, "Alice", "alice@example.com", role.ID)
	bob := createUser(t, db, "Bob", "bob@example.com", role.ID)

	alicePayment, err := svc.Create(admin, PaymentRequest{UserID: alice.ID, Amount: "20.00"})
	require.NoError(t, err)
	assert.False(t, alicePayment.Time.IsZero())

	bobPayment, err := svc.Create(admin, PaymentRequest{UserID: bob.ID, Amount: "5.00"})
	require.NoError(t, err)

	t.Run("own scope narrows list and read", func(t *testing.T) {
		sess := loginAs(t, db, alice.ID)

		payments, err := svc.ReadAll(sess, query.Payment{})
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, alicePayment.ID, payments[0].ID)

		_, err = svc.Read(sess, bobPayment.ID)
		require.Error(t, err)
		assert.True(t, IsAuthorization(err))
	})

	t.Run("malformed amount rejected", func(t *testing.T) {
		_, err := svc.Create(admin, PaymentRequest{UserID: alice.ID, Amount: "twenty"})
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		require.NoError(t, svc.Delete(admin, bobPayment.ID))

		_, err := svc.Read(admin, bobPayment.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}
