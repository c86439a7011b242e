package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Ingredient is a priced catalog entry. Pizzas reference ingredients by Name, not by ID.
type Ingredient struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	// Type is a grouping label (topping, cheese, sauce...) used by clients only
	Type string              `json:"type"`
	Cost decimal.NullDecimal `json:"cost" gorm:"type:numeric"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// MarshalJSON renders Cost with two decimal places, or null when it is not set
func (i Ingredient) MarshalJSON() ([]byte, error) {
	type ingredient Ingredient
	var cost *string
	if i.Cost.Valid {
		fixed := i.Cost.Decimal.StringFixed(2)
		cost = &fixed
	}
	return json.Marshal(struct {
		ingredient
		Cost *string `json:"cost"`
	}{ingredient(i), cost})
}
