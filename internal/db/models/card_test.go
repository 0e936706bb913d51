package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardConstructors(t *testing.T) {
	shutdown := NewShutdownCard(1)
	assert.Equal(t, CardTypeShutdown, shutdown.TypeID)
	assert.Nil(t, shutdown.EquipmentTypeID)
	assert.Nil(t, shutdown.UserID)

	proxy := NewProxyCard(2)
	assert.Equal(t, CardTypeProxy, proxy.TypeID)
	assert.Nil(t, proxy.EquipmentTypeID)
	assert.Nil(t, proxy.UserID)

	training := NewTrainingCard(3, 7)
	assert.Equal(t, CardTypeTraining, training.TypeID)
	require.NotNil(t, training.EquipmentTypeID)
	assert.Equal(t, uint(7), *training.EquipmentTypeID)
	assert.Nil(t, training.UserID)

	user := NewUserCard(4, 9)
	assert.Equal(t, CardTypeUser, user.TypeID)
	require.NotNil(t, user.UserID)
	assert.Equal(t, uint64(9), *user.UserID)
	assert.Nil(t, user.EquipmentTypeID)
}

func TestValidCardType(t *testing.T) {
	assert.True(t, ValidCardType(CardTypeShutdown))
	assert.True(t, ValidCardType(CardTypeUser))
	assert.False(t, ValidCardType(CardType(0)))
	assert.False(t, ValidCardType(CardType(5)))
}

func TestValidChargePolicy(t *testing.T) {
	assert.True(t, ValidChargePolicy(ChargePolicyManuallyAdjusted))
	assert.True(t, ValidChargePolicy(ChargePolicyPerMinute))
	assert.False(t, ValidChargePolicy(ChargePolicy(0)))
	assert.False(t, ValidChargePolicy(ChargePolicy(5)))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Training Card", CardTypeTraining.String())
	assert.Equal(t, "Unknown", CardType(42).String())
	assert.Equal(t, "Planned Shutdown", EventPlannedShutdown.String())
	assert.Equal(t, "Unknown", LoggedEventType(42).String())
}
