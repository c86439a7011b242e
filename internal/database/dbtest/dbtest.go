// Package dbtest provides migrated in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/custom-pizza-api/internal/database"
	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns an isolated, migrated in-memory sqlite database closed at the end of the test
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       dsn,
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// NewWithCatalog returns New seeded with Catalog
func NewWithCatalog(t testing.TB) *gorm.DB {
	t.Helper()

	db := New(t)
	_, err := database.SeedIngredients(context.Background(), db, Catalog())
	require.NoError(t, err)
	return db
}

// Catalog is a small ingredient catalog with easy to add prices
func Catalog() []models.Ingredient {
	return []models.Ingredient{
		{Name: "cheese", Type: "cheese", Cost: Cost("1.50")},
		{Name: "olives", Type: "topping", Cost: Cost("0.75")},
		{Name: "pepperoni", Type: "meat", Cost: Cost("2.00")},
		{Name: "basil", Type: "herb", Cost: Cost("0")},
	}
}

// Cost builds a valid ingredient cost
func Cost(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}
