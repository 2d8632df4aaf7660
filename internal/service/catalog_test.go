package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	svc := &CatalogService{Repo: initTestRepo(t)}
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "bat", "willow", 149.99, "http://img/bat")
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	require.Equal(t, "bat", p.Name)
	require.Equal(t, 149.99, p.Price)
}

func TestCreateProductValidation(t *testing.T) {
	svc := &CatalogService{Repo: initTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "", "d", 1, "http://img")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, "n", "d", 0, "http://img")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, "n", "d", -5, "http://img")
	require.ErrorIs(t, err, ErrValidation)
}

func TestListProducts(t *testing.T) {
	svc := &CatalogService{Repo: initTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "first", "d", 1, "http://img")
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, "second", "d", 2, "http://img")
	require.NoError(t, err)

	items, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "first", items[0].Name)
	require.Equal(t, "second", items[1].Name)
}

func TestListProductsEmpty(t *testing.T) {
	svc := &CatalogService{Repo: initTestRepo(t)}

	_, err := svc.ListProducts(context.Background())
	require.ErrorIs(t, err, ErrNoProducts)
}
