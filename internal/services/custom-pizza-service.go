package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/franciscosanchezn/custom-pizza-api/internal/pricing"
	"github.com/shopspring/decimal"
)

// CustomPizzaService orchestrates pricing and persistence of custom pizzas
type CustomPizzaService interface {
	// CreatePizza prices and stores a new pizza
	CreatePizza(ctx context.Context, name string, ingredientNames []string) (models.CustomPizza, error)
	// ListIngredients returns the full ingredient catalog
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	// ListPizzas returns every custom pizza
	ListPizzas(ctx context.Context) ([]models.CustomPizza, error)
	// GetPizza retrieves a pizza by its ID
	GetPizza(ctx context.Context, id uint) (models.CustomPizza, error)
	// UpdatePizza replaces name and ingredients of a pizza and reprices it
	UpdatePizza(ctx context.Context, id uint, name string, ingredientNames []string) (models.CustomPizza, error)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(ctx context.Context, id uint) error
}

// customPizzaService is the implementation of the CustomPizzaService interface
type customPizzaService struct {
	store   CustomItemStore
	baseFee decimal.Decimal
}

// NewCustomPizzaService creates a new instance of CustomPizzaService
func NewCustomPizzaService(store CustomItemStore, baseFee decimal.Decimal) CustomPizzaService {
	return &customPizzaService{store: store, baseFee: baseFee}
}

func (s *customPizzaService) CreatePizza(ctx context.Context, name string, ingredientNames []string) (models.CustomPizza, error) {
	name, err := validateName(name)
	if err != nil {
		return models.CustomPizza{}, err
	}

	price, err := s.price(ctx, ingredientNames)
	if err != nil {
		return models.CustomPizza{}, err
	}
	return s.store.InsertPizza(ctx, name, ingredientNames, price)
}

func (s *customPizzaService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.store.FindAllIngredients(ctx)
}

func (s *customPizzaService) ListPizzas(ctx context.Context) ([]models.CustomPizza, error) {
	return s.store.ListPizzas(ctx)
}

func (s *customPizzaService) GetPizza(ctx context.Context, id uint) (models.CustomPizza, error) {
	return s.store.GetPizza(ctx, id)
}

func (s *customPizzaService) UpdatePizza(ctx context.Context, id uint, name string, ingredientNames []string) (models.CustomPizza, error) {
	name, err := validateName(name)
	if err != nil {
		return models.CustomPizza{}, err
	}

	price, err := s.price(ctx, ingredientNames)
	if err != nil {
		return models.CustomPizza{}, err
	}
	return s.store.UpdatePizza(ctx, id, name, ingredientNames, price)
}

func (s *customPizzaService) DeletePizza(ctx context.Context, id uint) error {
	return s.store.DeletePizza(ctx, id)
}

// price is the only pricing path for both create and update
func (s *customPizzaService) price(ctx context.Context, ingredientNames []string) (decimal.Decimal, error) {
	catalog, err := s.store.FindIngredientsByName(ctx, ingredientNames)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price pizza: %w", err)
	}
	return pricing.ComputePrice(ingredientNames, catalog, s.baseFee), nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrInvalidPizzaName
	}
	return trimmed, nil
}
