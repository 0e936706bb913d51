package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

func TestUserService_CreateAndLogin(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewUserService(db)

	role := createRole(t, db, "member", perms.ReadOwnUser)

	created, err := svc.Create(sess, UserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		RoleID:   role.ID,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.True(t, created.VerifyPassword("hunter2hunter2"))
	assert.False(t, created.VerifyPassword("wrong"))
	assert.Equal(t, "member", created.Role.Name)
}

func TestUserService_CreateValidation(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewUserService(db)

	tests := []struct {
		name string
		req  UserRequest
	}{
		{"missing name", UserRequest{Email: "a@example.com", RoleID: 1}},
		{"missing email", UserRequest{Name: "A", RoleID: 1}},
		{"bad email", UserRequest{Name: "A", Email: "not-an-email", RoleID: 1}},
		{"missing role", UserRequest{Name: "A", Email: "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(sess, tt.req)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Create(sess, UserRequest{Name: "A", Email: "a@example.com", RoleID: 4242})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestUserService_ReadOwn(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	role := createRole(t, db, "member", perms.ReadOwnUser)
	alice := createUser(t, db, "Alice", "alice@example.com", role.ID)
	bob := createUser(t, db, "Bob", "bob@example.com", role.ID)

	sess := loginAs(t, db, alice.ID)

	own, err := svc.Read(sess, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", own.Name)

	_, err = svc.Read(sess, bob.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
}

func TestUserService_Import(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)
	svc := NewUserService(db)

	createRole(t, db, "member")

	t.Run("valid file imports every row", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,email,role",
			"Alice,alice@example.com,member",
			"Bob,bob@example.com,admin",
		}, "\n")

		users, err := svc.Import(sess, strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.True(t, users[0].Active)

		all, err := svc.ReadAll(sess, query.User{Search: "bob@"})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Bob", all[0].Name)
	})

	t.Run("unknown role rejects the whole file", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,email,role",
			"Carol,carol@example.com,member",
			"Dave,dave@example.com,nonexistent",
		}, "\n")

		_, err := svc.Import(sess, strings.NewReader(csv))
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "nonexistent")

		// Carol was valid but must not have been persisted.
		all, err := svc.ReadAll(sess, query.User{Search: "carol"})
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("bad email rejects the whole file", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,email,role",
			"Erin,not-an-email,member",
		}, "\n")

		_, err := svc.Import(sess, strings.NewReader(csv))
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("wrong column count rejects the whole file", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,email,role",
			"Frank,frank@example.com",
		}, "\n")

		_, err := svc.Import(sess, strings.NewReader(csv))
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("requires the user creation permission", func(t *testing.T) {
		role := createRole(t, db, "viewer", perms.ListUsers)
		viewer := createUser(t, db, "Viewer", "viewer@example.com", role.ID)

		_, err := svc.Import(loginAs(t, db, viewer.ID), strings.NewReader("name,email,role\n"))
		require.Error(t, err)
		assert.True(t, IsAuthorization(err))
	})
}

func TestUserService_Authorizations(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	admin := adminSession(t, db)
	svc := NewUserService(db)

	role := createRole(t, db, "member", perms.ListOwnEquipmentAuthorizations)
	member := createUser(t, db, "Member", "member@example.com", role.ID)

	require.NoError(t, svc.Authorize(admin, member.ID, shop.trainedType.ID))
	// granting twice is a no-op
	require.NoError(t, svc.Authorize(admin, member.ID, shop.trainedType.ID))

	own, err := svc.Authorizations(loginAs(t, db, member.ID), member.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{shop.trainedType.ID}, own)

	require.NoError(t, svc.Deauthorize(admin, member.ID, shop.trainedType.ID))

	own, err = svc.Authorizations(admin, member.ID)
	require.NoError(t, err)
	assert.Empty(t, own)

	t.Run("unknown equipment type", func(t *testing.T) {
		err := svc.Authorize(admin, member.ID, 4242)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}
