package stores

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestAPIKeyStore_ReadByToken(t *testing.T) {
	db, mock := mockDB(t)
	store := NewAPIKeyStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "token"}).
		AddRow(3, "ci", "secret-token")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `api_keys` WHERE token = ? ORDER BY `api_keys`.`id` LIMIT ?",
	)).
		WithArgs("secret-token", 1).
		WillReturnRows(rows)

	key, err := store.ReadByToken("secret-token")
	require.NoError(t, err)
	assert.Equal(t, uint(3), key.ID)
	assert.Equal(t, "ci", key.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyStore_ReadByTokenNotFound(t *testing.T) {
	db, mock := mockDB(t)
	store := NewAPIKeyStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `api_keys` WHERE token = ? ORDER BY `api_keys`.`id` LIMIT ?",
	)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "token"}))

	_, err := store.ReadByToken("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
