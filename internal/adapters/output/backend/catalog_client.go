package backend

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/ports/output"
)

// Compile-time check
var _ output.CatalogAPI = (*CatalogClient)(nil)

// CatalogClient struct - Output adapter for the product catalog
type CatalogClient struct {
	client *Client
}

// NewCatalogClient func
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// ListProducts func - GET /api/get_products
func (a *CatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var records []productRecord
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/get_products", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, record.toProduct())
	}
	return products, nil
}

// GetProduct func - GET /api/get_products_details/{productId}
func (a *CatalogClient) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var record productRecord
	path := fmt.Sprintf("/api/get_products_details/%s", productID)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &record); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	product := record.toProduct()
	return &product, nil
}

// AddProduct func - POST /api/add_product
func (a *CatalogClient) AddProduct(ctx context.Context, request domain.NewProductRequest) (*domain.Product, error) {
	body := map[string]interface{}{
		"name":          request.Name,
		"description":   request.Description,
		"category":      request.Category,
		"selling_price": request.SellingPrice.String(),
		"stock":         request.Stock,
		"image_url":     request.ImageURL,
	}

	var record productRecord
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/add_product", body, &record); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	product := record.toProduct()
	return &product, nil
}

// productRecord represents a catalog row as the backend serves it.
// Prices arrive as numbers or strings depending on the endpoint.
type productRecord struct {
	ProductID    flexibleID  `json:"product_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	SellingPrice interface{} `json:"selling_price"`
	Price        interface{} `json:"price"`
	Stock        int         `json:"stock"`
	ImageURL     string      `json:"image_url"`
	Image        string      `json:"image"`
}

func (r productRecord) toProduct() domain.Product {
	// Reuse cart normalization for the price and image fallback chains.
	line := domain.NormalizeProduct(domain.RawProduct{
		ProductID:    r.ProductID.String(),
		Name:         r.Name,
		Price:        r.Price,
		SellingPrice: r.SellingPrice,
		ImageURL:     r.ImageURL,
		Image:        r.Image,
	})

	return domain.Product{
		ProductID:    r.ProductID.String(),
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		SellingPrice: line.UnitPrice,
		Stock:        r.Stock,
		ImageURL:     line.ImageRef,
	}
}
