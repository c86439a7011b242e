package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomPizzaMarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		price    decimal.Decimal
		expected string
	}{
		{name: "should pad whole amounts", price: decimal.NewFromFloat(5), expected: "5.00"},
		{name: "should pad one decimal", price: decimal.NewFromFloat(6.5), expected: "6.50"},
		{name: "should keep two decimals", price: decimal.RequireFromString("7.25"), expected: "7.25"},
		{name: "should round extra precision", price: decimal.RequireFromString("5.6667"), expected: "5.67"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(CustomPizza{ID: 1, Name: "x", IngredientNames: []string{"cheese"}, FinalPrice: tt.price})
			require.NoError(t, err)

			var fields map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &fields))
			assert.Equal(t, tt.expected, fields["final_price"])
			assert.Equal(t, "x", fields["name"])
			assert.Equal(t, []interface{}{"cheese"}, fields["ingredient_names"])
		})
	}
}

func TestCustomPizzaJSONReadsBack(t *testing.T) {
	data, err := json.Marshal(CustomPizzaResponse{
		Message:     MsgPizzaCreated,
		CustomPizza: CustomPizza{ID: 2, Name: "Olive", FinalPrice: decimal.NewFromFloat(7.25)},
	})
	require.NoError(t, err)

	var response CustomPizzaResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, uint(2), response.CustomPizza.ID)
	assert.True(t, decimal.RequireFromString("7.25").Equal(response.CustomPizza.FinalPrice))
}

func TestIngredientMarshalJSON(t *testing.T) {
	t.Run("should render cost with two decimals", func(t *testing.T) {
		data, err := json.Marshal(Ingredient{ID: 1, Name: "cheese", Type: "cheese", Cost: decimal.NewNullDecimal(decimal.NewFromFloat(1.5))})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"cheese","type":"cheese","cost":"1.50"}`, string(data))
	})

	t.Run("should render missing cost as null", func(t *testing.T) {
		data, err := json.Marshal(Ingredient{ID: 2, Name: "mystery"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":2,"name":"mystery","type":"","cost":null}`, string(data))
	})
}
