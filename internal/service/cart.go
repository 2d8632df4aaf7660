package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crickmart/backend/internal/models"
	"github.com/crickmart/backend/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

type AddToCartResult struct {
	Item *models.CartItem
	// Created is true when a new row was inserted, false when an existing
	// row's quantity was incremented.
	Created bool
}

func (s *CartService) AddToCart(ctx context.Context, userID uint, productID, quantity int64) (*AddToCartResult, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("product id must be positive: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	// Product existence comes first: no cart row may ever reference a
	// product that is not there.
	if _, err := s.Repo.ProductByID(ctx, uint(productID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
		}
		return nil, err
	}

	item, created, err := s.Repo.UpsertCartItem(ctx, userID, uint(productID), quantity)
	if err != nil {
		return nil, err
	}

	return &AddToCartResult{Item: item, Created: created}, nil
}

// GetCart returns the user's items with product details preloaded. An empty
// cart is an empty slice, not an error.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.CartForUser(ctx, userID)
}
