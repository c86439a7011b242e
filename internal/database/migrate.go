package database

import (
	"errors"

	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables used by the API
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database handle is nil")
	}
	return db.AutoMigrate(&models.Ingredient{}, &models.CustomPizza{})
}
