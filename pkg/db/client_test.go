package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/shopassist-backend/pkg/db"
	"github.com/angelmondragon/shopassist-backend/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countProducts(t *testing.T, conn *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, conn.Table("products").Count(&count).Error)
	return count
}

func insertProduct(tx *gorm.DB, name string) error {
	return tx.Exec("INSERT INTO products (name, category, price) VALUES (?, ?, ?)", name, "Test", 1).Error
}

func TestWithTx_CommitsAndRollsBack(t *testing.T) {
	client := dbtest.New(t)
	ctx := context.Background()

	require.NoError(t, client.WithTx(ctx, func(tx *gorm.DB) error {
		return insertProduct(tx, "committed")
	}))
	assert.EqualValues(t, 1, countProducts(t, client.DB()))

	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := insertProduct(tx, "rolled"); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	assert.EqualValues(t, 1, countProducts(t, client.DB()))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	client := dbtest.New(t)

	assert.Panics(t, func() {
		_ = client.WithTx(context.Background(), func(tx *gorm.DB) error {
			_ = insertProduct(tx, "panicked")
			panic("kaboom")
		})
	})
	assert.EqualValues(t, 0, countProducts(t, client.DB()))
}

func TestPingAndDialect(t *testing.T) {
	client := dbtest.New(t)
	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, "sqlite", client.Dialect())
}

func TestForeignKeysAreEnforced(t *testing.T) {
	client := dbtest.New(t)

	err := client.DB().Exec(
		"INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase) VALUES (?, ?, ?, ?)",
		42, 42, 1, 1,
	).Error
	require.Error(t, err)
	assert.True(t, db.IsForeignKeyViolation(err))
	assert.False(t, db.IsForeignKeyViolation(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "shop.db?_foreign_keys=on", db.SQLiteDSN("shop.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", db.SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "shop.db?_fk=1", db.SQLiteDSN("shop.db?_fk=1"))
}
