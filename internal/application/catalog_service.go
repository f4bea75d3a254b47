package application

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check
var _ input.CatalogService = (*CatalogService)(nil)

// CatalogService struct - Application service for product browsing and the
// admin add-product use case.
type CatalogService struct {
	api  output.CatalogAPI
	cart input.CartStore
}

// NewCatalogService func
func NewCatalogService(api output.CatalogAPI, cart input.CartStore) *CatalogService {
	return &CatalogService{
		api:  api,
		cart: cart,
	}
}

// ListProducts func - Use case: browse the catalog
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return products, nil
}

// GetProduct func - Use case: product details
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.api.GetProduct(ctx, productID)
}

// AddProduct func - Use case: admin adds a catalog item
func (s *CatalogService) AddProduct(ctx context.Context, request domain.NewProductRequest) (*domain.Product, error) {
	if !s.cart.Session().IsAdmin() {
		return nil, fmt.Errorf("add product: %w", domain.ErrUnauthenticated)
	}
	return s.api.AddProduct(ctx, request)
}
