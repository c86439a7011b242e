package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

// DefaultCatalog returns the ingredients seeded into an empty database
func DefaultCatalog() []models.Ingredient {
	return []models.Ingredient{
		{Name: "Tomato Sauce", Type: "sauce", Cost: price("0.50")},
		{Name: "Pesto", Type: "sauce", Cost: price("1.00")},
		{Name: "Mozzarella", Type: "cheese", Cost: price("1.50")},
		{Name: "Parmesan", Type: "cheese", Cost: price("1.25")},
		{Name: "Gorgonzola", Type: "cheese", Cost: price("1.75")},
		{Name: "Pepperoni", Type: "meat", Cost: price("2.00")},
		{Name: "Ham", Type: "meat", Cost: price("1.75")},
		{Name: "Italian Sausage", Type: "meat", Cost: price("2.25")},
		{Name: "Mushrooms", Type: "vegetable", Cost: price("0.75")},
		{Name: "Olives", Type: "vegetable", Cost: price("0.75")},
		{Name: "Bell Peppers", Type: "vegetable", Cost: price("0.60")},
		{Name: "Red Onion", Type: "vegetable", Cost: price("0.40")},
		{Name: "Pineapple", Type: "fruit", Cost: price("0.80")},
		{Name: "Basil", Type: "herb", Cost: price("0.30")},
	}
}

// SeedIngredients upserts catalog rows by name and returns the number of rows written
func SeedIngredients(ctx context.Context, db *gorm.DB, catalog []models.Ingredient) (int64, error) {
	if len(catalog) == 0 {
		return 0, nil
	}

	rows := make([]models.Ingredient, len(catalog))
	copy(rows, catalog)
	for i := range rows {
		rows[i].ID = 0
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "cost"}),
	}).Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("seed ingredients: %w", result.Error)
	}

	log.WithField("ingredients", result.RowsAffected).Info("Ingredient catalog seeded")
	return result.RowsAffected, nil
}

// SeedIfEmpty seeds the default catalog when the ingredients table has no rows
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count ingredients: %w", err)
	}
	if count > 0 {
		log.WithField("ingredients", count).Info("Ingredient catalog already seeded")
		return nil
	}

	log.Info("Ingredient catalog is empty, seeding default data")
	_, err := SeedIngredients(ctx, db, DefaultCatalog())
	return err
}

// ResetCatalog deletes every ingredient row
func ResetCatalog(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Ingredient{}).Error
	if err != nil {
		return fmt.Errorf("reset catalog: %w", err)
	}
	return nil
}
