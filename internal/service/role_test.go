package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

func TestRoleService_CreateAndReadBack(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewRoleService(db)

	created, err := svc.Create(sess, RoleRequest{
		Name:        "maker",
		Description: "Regular member",
		Permissions: []int{
			int(perms.ListOwnCards),
			int(perms.ListOwnCharges),
			int(perms.ReadOwnUser),
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	loaded, err := svc.Read(sess, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "maker", loaded.Name)
	assert.ElementsMatch(t,
		[]perms.Permission{perms.ListOwnCards, perms.ListOwnCharges, perms.ReadOwnUser},
		loaded.Permissions,
	)
	assert.True(t, loaded.HasPermission(perms.ListOwnCards))
	assert.False(t, loaded.HasPermission(perms.ListCards))
}

func TestRoleService_RejectsUnknownPermission(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewRoleService(db)

	_, err := svc.Create(sess, RoleRequest{
		Name:        "broken",
		Permissions: []int{int(perms.ListCards), 99999},
	})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	// nothing was persisted
	roles, err := svc.ReadAll(sess)
	require.NoError(t, err)
	for _, role := range roles {
		assert.NotEqual(t, "broken", role.Name)
	}
}

func TestRoleService_SystemRoleProtected(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewRoleService(db)

	_, err := svc.Update(sess, 1, RoleRequest{Name: "renamed"})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	err = svc.Delete(sess, 1)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestRoleService_RequiresAuthentication(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)

	_, err := svc.ReadAll(anonymous(db))
	require.Error(t, err)
	assert.True(t, IsAuthentication(err))
	assert.Equal(t, MsgRolesNotAuthenticated, err.Error())
}

func TestRoleService_RequiresPermission(t *testing.T) {
	db := testDB(t)
	role := createRole(t, db, "limited", perms.ReadOwnUser)
	user := createUser(t, db, "Limited", "limited@example.com", role.ID)
	sess := loginAs(t, db, user.ID)
	svc := NewRoleService(db)

	_, err := svc.ReadAll(sess)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
}

func TestRoleService_NotFoundAfterAuthorization(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewRoleService(db)

	_, err := svc.Read(sess, 4242)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, MsgRoleNotFound, err.Error())
}
