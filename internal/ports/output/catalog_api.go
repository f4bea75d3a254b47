package output

import (
	"context"

	"storefront/internal/domain"
)

// CatalogAPI interface - Output port
// Read access to the product catalog plus the admin add-product call.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	AddProduct(ctx context.Context, request domain.NewProductRequest) (*domain.Product, error)
}
