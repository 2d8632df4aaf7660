package service

import (
	"context"
	"fmt"

	"github.com/crickmart/backend/internal/models"
	"github.com/crickmart/backend/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, name, description string, price float64, imageURL string) (*models.Product, error) {
	if name == "" || description == "" || imageURL == "" {
		return nil, fmt.Errorf("all product fields are required: %w", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("price must be positive: %w", ErrValidation)
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the catalog in creation order. An empty catalog is
// ErrNoProducts so callers can tell it apart from a store failure.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoProducts
	}
	return items, nil
}
