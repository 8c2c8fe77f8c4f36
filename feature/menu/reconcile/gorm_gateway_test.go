package reconcile

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGateway(t *testing.T) (*GormGateway, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return NewGormGateway(db), mock
}

// The order writer must emit exactly one statement per sibling group, with
// list position as the zero-based order value.
func TestGormTx_SetCategoryOrderSQL(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE categories SET `order` = CASE id"+
			" WHEN ? THEN ? WHEN ? THEN ? WHEN ? THEN ?"+
			" END WHERE restaurant_id = ? AND id IN (?,?,?)")).
		WithArgs(3, 0, 1, 1, 2, 2, 5, 3, 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := gw.InTx(context.Background(), func(tx Tx) error {
		return tx.SetCategoryOrder(context.Background(), 5, []uint{3, 1, 2})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTx_SetCategoryOrderEmptyListWritesNothing(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := gw.InTx(context.Background(), func(tx Tx) error {
		return tx.SetCategoryOrder(context.Background(), 5, nil)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// On MySQL the dedup lookup must compare names binary, so the default
// collation cannot fold case.
func TestGormTx_CategoryByNameUsesBinaryMatchOnMySQL(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	// gorm's First binds LIMIT as a third argument on the mysql driver.
	mock.ExpectQuery(`SELECT \* FROM .categories. WHERE restaurant_id = \? AND BINARY name = \?.*LIMIT \?`).
		WithArgs(5, "Starters", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "order"}).
			AddRow(11, 5, "Starters", 1))
	mock.ExpectCommit()

	err := gw.InTx(context.Background(), func(tx Tx) error {
		cat, err := tx.CategoryByName(context.Background(), 5, "Starters")
		require.NoError(t, err)
		require.NotNil(t, cat)
		assert.Equal(t, uint(11), cat.ID)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
