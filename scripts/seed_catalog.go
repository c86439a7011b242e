package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/franciscosanchezn/custom-pizza-api/internal/config"
	"github.com/franciscosanchezn/custom-pizza-api/internal/database"
	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	file := flag.String("file", "", "JSON file with the ingredient catalog (defaults to the built-in catalog)")
	reset := flag.Bool("reset", false, "Delete every ingredient before seeding")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     conf.DBDriver,
		Host:       conf.DBHost,
		Port:       conf.DBPort,
		User:       conf.DBUser,
		Password:   conf.DBPassword,
		Name:       conf.DBName,
		SSLMode:    conf.DBSSLMode,
		Path:       conf.DBPath,
		MaxRetries: conf.DBMaxRetries,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	catalog := database.DefaultCatalog()
	if *file != "" {
		catalog, err = readCatalog(*file)
		if err != nil {
			log.Fatal("Failed to read catalog:", err)
		}
	}

	ctx := context.Background()
	if *reset {
		if err := database.ResetCatalog(ctx, db); err != nil {
			log.Fatal("Failed to reset catalog:", err)
		}
		fmt.Println("Existing ingredients removed")
	}

	written, err := database.SeedIngredients(ctx, db, catalog)
	if err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	fmt.Printf("✓ Ingredient catalog seeded (%d rows written)\n", written)
	for _, ingredient := range catalog {
		cost := "n/a"
		if ingredient.Cost.Valid {
			cost = ingredient.Cost.Decimal.StringFixed(2)
		}
		fmt.Printf("  %-20s %-10s %s\n", ingredient.Name, ingredient.Type, cost)
	}
}

// readCatalog decodes a JSON array of {"name", "type", "cost"} objects
func readCatalog(path string) ([]models.Ingredient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog []models.Ingredient
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, ingredient := range catalog {
		if ingredient.Name == "" {
			return nil, fmt.Errorf("decode %s: ingredient %d has no name", path, i)
		}
	}
	return catalog, nil
}
