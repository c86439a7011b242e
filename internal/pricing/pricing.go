// Package pricing computes custom pizza prices from the ingredient catalog.
package pricing

import (
	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultBaseFee is charged once per pizza on top of its ingredients
var DefaultBaseFee = decimal.RequireFromString("5.00")

// ComputePrice returns baseFee plus the cost of every catalog row whose name appears in names.
//
// Matching is by membership: a catalog row counts once even if its name is repeated in names.
// Names missing from the catalog add nothing. A NULL or negative cost counts as zero.
func ComputePrice(names []string, catalog []models.Ingredient, baseFee decimal.Decimal) decimal.Decimal {
	selected := make(map[string]struct{}, len(names))
	for _, name := range names {
		selected[name] = struct{}{}
	}

	total := baseFee
	for _, ingredient := range catalog {
		if _, ok := selected[ingredient.Name]; !ok {
			continue
		}
		total = total.Add(IngredientCost(ingredient))
	}
	return total
}

// IngredientCost returns the usable cost of an ingredient, zero when the stored value is unusable
func IngredientCost(ingredient models.Ingredient) decimal.Decimal {
	if !ingredient.Cost.Valid || ingredient.Cost.Decimal.IsNegative() {
		return decimal.Zero
	}
	return ingredient.Cost.Decimal
}

// Display formats a price with two decimal places
func Display(price decimal.Decimal) string {
	return price.StringFixed(2)
}
