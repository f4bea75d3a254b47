package input

import (
	"context"

	"storefront/internal/domain"
)

// CatalogService interface - Input port (use case)
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	AddProduct(ctx context.Context, request domain.NewProductRequest) (*domain.Product, error)
}
