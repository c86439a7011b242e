package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CustomPizza represents a user composed pizza.
// FinalPrice is always computed by the server from IngredientNames and the catalog.
type CustomPizza struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" gorm:"not null"`
	IngredientNames datatypes.JSONSlice[string] `json:"ingredient_names" gorm:"not null" swaggertype:"array,string"`
	FinalPrice      decimal.Decimal             `json:"final_price" gorm:"type:numeric;not null" swaggertype:"string" example:"7.25"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (CustomPizza) TableName() string {
	return "custom_items"
}

// MarshalJSON renders FinalPrice with two decimal places, whatever scale the database returned
func (p CustomPizza) MarshalJSON() ([]byte, error) {
	type customPizza CustomPizza
	return json.Marshal(struct {
		customPizza
		FinalPrice string `json:"final_price"`
	}{customPizza(p), p.FinalPrice.StringFixed(2)})
}

// CustomPizzaRequest is the accepted body for create and update.
// Any final_price sent by the client is dropped during binding.
type CustomPizzaRequest struct {
	Name            string   `json:"name" binding:"required,max=255" example:"Veggie Supreme"`
	IngredientNames []string `json:"ingredient_names" example:"cheese,olives"`
}
