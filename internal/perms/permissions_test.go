package perms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(CreateEquipment))
	assert.True(t, Valid(ListOwnCards))
	assert.False(t, Valid(Permission(0)))
	assert.False(t, Valid(Permission(99999)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "CREATE_EQUIPMENT", CreateEquipment.String())
	assert.Equal(t, "READ_OWN_USER", ReadOwnUser.String())
	assert.Equal(t, "UNKNOWN", Permission(99999).String())
}

func TestAll(t *testing.T) {
	all := All()
	assert.NotEmpty(t, all)

	seen := make(map[Permission]bool, len(all))
	for _, p := range all {
		assert.True(t, Valid(p))
		assert.False(t, seen[p], "duplicate permission %d", p)
		seen[p] = true
	}

	assert.True(t, seen[CreateEquipment])
	assert.True(t, seen[ListOwnBadges])
}
