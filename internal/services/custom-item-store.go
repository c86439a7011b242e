package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomItemStore is the persistence contract for the ingredient catalog and custom pizzas
type CustomItemStore interface {
	// FindAllIngredients returns the whole catalog
	FindAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	// FindIngredientsByName returns the catalog rows matching names, missing names are skipped
	FindIngredientsByName(ctx context.Context, names []string) ([]models.Ingredient, error)
	// InsertPizza stores a new pizza and assigns its id
	InsertPizza(ctx context.Context, name string, ingredientNames []string, price decimal.Decimal) (models.CustomPizza, error)
	// GetPizza retrieves a pizza by id
	GetPizza(ctx context.Context, id uint) (models.CustomPizza, error)
	// ListPizzas returns every stored pizza
	ListPizzas(ctx context.Context) ([]models.CustomPizza, error)
	// UpdatePizza overwrites name, ingredients and price of an existing pizza
	UpdatePizza(ctx context.Context, id uint, name string, ingredientNames []string, price decimal.Decimal) (models.CustomPizza, error)
	// DeletePizza removes a pizza by id
	DeletePizza(ctx context.Context, id uint) error
}

// nameLookupBatchSize keeps IN lists well below the bind parameter limits of sqlite and postgres
const nameLookupBatchSize = 500

// customItemStore is the gorm implementation of CustomItemStore
type customItemStore struct {
	db *gorm.DB
}

// NewCustomItemStore creates a new instance of CustomItemStore
func NewCustomItemStore(db *gorm.DB) CustomItemStore {
	return &customItemStore{db: db}
}

func (s *customItemStore) FindAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("id").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("find ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *customItemStore) FindIngredientsByName(ctx context.Context, names []string) ([]models.Ingredient, error) {
	if len(names) == 0 {
		return []models.Ingredient{}, nil
	}

	unique := uniqueNames(names)
	ingredients := make([]models.Ingredient, 0, len(unique))
	for start := 0; start < len(unique); start += nameLookupBatchSize {
		end := min(start+nameLookupBatchSize, len(unique))

		var batch []models.Ingredient
		if err := s.db.WithContext(ctx).Where("name IN ?", unique[start:end]).Find(&batch).Error; err != nil {
			return nil, fmt.Errorf("find ingredients by name: %w", err)
		}
		ingredients = append(ingredients, batch...)
	}

	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i].ID < ingredients[j].ID })
	return ingredients, nil
}

func (s *customItemStore) InsertPizza(ctx context.Context, name string, ingredientNames []string, price decimal.Decimal) (models.CustomPizza, error) {
	pizza := models.CustomPizza{
		Name:            name,
		IngredientNames: normalizeNames(ingredientNames),
		FinalPrice:      price,
	}
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.CustomPizza{}, fmt.Errorf("insert pizza: %w", err)
	}
	return pizza, nil
}

func (s *customItemStore) GetPizza(ctx context.Context, id uint) (models.CustomPizza, error) {
	var pizza models.CustomPizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.CustomPizza{}, translateError(err, "get pizza")
	}
	return withNames(pizza), nil
}

func (s *customItemStore) ListPizzas(ctx context.Context) ([]models.CustomPizza, error) {
	var pizzas []models.CustomPizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	for i := range pizzas {
		pizzas[i] = withNames(pizzas[i])
	}
	return pizzas, nil
}

func (s *customItemStore) UpdatePizza(ctx context.Context, id uint, name string, ingredientNames []string, price decimal.Decimal) (models.CustomPizza, error) {
	var pizza models.CustomPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pizza, id).Error; err != nil {
			return err
		}

		pizza.Name = name
		pizza.IngredientNames = normalizeNames(ingredientNames)
		pizza.FinalPrice = price

		// Select forces zero values (empty ingredient list) to be written too
		return tx.Model(&pizza).
			Select("name", "ingredient_names", "final_price", "updated_at").
			Updates(&pizza).Error
	})
	if err != nil {
		return models.CustomPizza{}, translateError(err, "update pizza")
	}
	return pizza, nil
}

func (s *customItemStore) DeletePizza(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.CustomPizza{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete pizza: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPizzaNotFound
	}
	return nil
}

// translateError maps gorm's not found error to ErrPizzaNotFound and wraps everything else
func translateError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPizzaNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// uniqueNames drops repeated names, keeping first occurrences in order
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func normalizeNames(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

func withNames(pizza models.CustomPizza) models.CustomPizza {
	if pizza.IngredientNames == nil {
		pizza.IngredientNames = []string{}
	}
	return pizza
}
