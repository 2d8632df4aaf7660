// Command seed inserts a small demo catalog so a fresh install has
// something to show.
package main

import (
	"context"
	"os"

	"github.com/crickmart/backend/internal/config"
	"github.com/crickmart/backend/internal/db"
	"github.com/crickmart/backend/internal/logging"
	"github.com/crickmart/backend/internal/models"
	"github.com/crickmart/backend/internal/repo"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("seed_error", "reason", "database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		logger.Error("seed_error", "reason", "migrate", "error", err)
		os.Exit(1)
	}

	store := &repo.GormRepo{DB: gdb}

	products := []models.Product{
		{
			Name:        "Classic Running Shoes",
			Description: "Lightweight running shoes with breathable mesh upper.",
			Price:       99.99,
			ImageURL:    "https://images.example.com/products/shoes.jpg",
		},
		{
			Name:        "Cotton T-Shirt",
			Description: "Soft everyday t-shirt in team colours.",
			Price:       49.99,
			ImageURL:    "https://images.example.com/products/shoes.jpg",
		},
		{
			Name:        "Cricket Bat",
			Description: "English willow bat, full size, pre-knocked.",
			Price:       149.99,
			ImageURL:    "https://images.example.com/products/shoes.jpg",
		},
		{
			Name:        "Water Bottle",
			Description: "Insulated steel bottle, keeps drinks cold for 12 hours.",
			Price:       19.99,
			ImageURL:    "https://images.example.com/products/shoes.jpg",
		},
	}

	for i := range products {
		if err := store.CreateProduct(ctx, &products[i]); err != nil {
			logger.Error("seed_error", "product", products[i].Name, "error", err)
			os.Exit(1)
		}
		logger.Info("seeded product", "id", products[i].ID, "name", products[i].Name)
	}

	logger.Info("seed complete", "count", len(products))
}
