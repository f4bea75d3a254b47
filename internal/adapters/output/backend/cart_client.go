package backend

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CartClient implements the CartAPI port
var _ output.CartAPI = (*CartClient)(nil)

// CartClient struct - Output adapter for the backend's cart resource
type CartClient struct {
	client *Client
}

// NewCartClient func
func NewCartClient(client *Client) *CartClient {
	return &CartClient{client: client}
}

// FetchCart func - GET /api/cart/{userId}
// The backend's line records are as heterogeneous as its product payloads, so
// each row goes through the same normalization as a local add.
func (a *CartClient) FetchCart(ctx context.Context, userID string) ([]domain.CartLine, error) {
	var records []cartLineRecord
	path := fmt.Sprintf("/api/cart/%s", userID)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, record := range records {
		lines = append(lines, domain.NormalizeProduct(domain.RawProduct{
			ProductID:    record.ProductID,
			ProductName:  record.ProductName,
			Name:         record.Name,
			Price:        record.Price,
			SellingPrice: record.SellingPrice,
			Quantity:     record.Quantity,
			ImageURL:     record.ImageURL,
			Image:        record.Image,
			RemoteLineID: record.ID.String(),
		}))
	}

	logrus.Infof("Fetched %d cart lines for user %s", len(lines), userID)
	return lines, nil
}

// AddLine func - POST /api/cart/add
func (a *CartClient) AddLine(ctx context.Context, userID string, line domain.CartLine) error {
	body := addCartLineRequest{
		UserID:      userID,
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Price:       line.UnitPrice.String(),
		Quantity:    line.Quantity,
		ImageURL:    line.ImageRef,
	}
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/cart/add", body, nil); err != nil {
		return fmt.Errorf("failed to add cart line: %w", err)
	}
	return nil
}

// UpdateLine func - PUT /api/cart/update/{remoteLineId}
func (a *CartClient) UpdateLine(ctx context.Context, remoteLineID string, quantity int) error {
	body := updateCartLineRequest{Quantity: quantity}
	path := fmt.Sprintf("/api/cart/update/%s", remoteLineID)
	if err := a.client.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}
	return nil
}

// DeleteLine func - DELETE /api/cart/delete/{remoteLineId}
func (a *CartClient) DeleteLine(ctx context.Context, remoteLineID string) error {
	path := fmt.Sprintf("/api/cart/delete/%s", remoteLineID)
	if err := a.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	return nil
}

// ClearCart func - DELETE /api/cart/clear/{userId}
func (a *CartClient) ClearCart(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/api/cart/clear/%s", userID)
	if err := a.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// API request/response structures for the backend's cart resource

// cartLineRecord represents one row of GET /api/cart/{userId}
type cartLineRecord struct {
	ID           flexibleID  `json:"id"`
	ProductID    string      `json:"product_id"`
	ProductName  string      `json:"product_name"`
	Name         string      `json:"name"`
	Price        interface{} `json:"price"`
	SellingPrice interface{} `json:"selling_price"`
	Quantity     int         `json:"quantity"`
	ImageURL     string      `json:"image_url"`
	Image        string      `json:"image"`
}

// addCartLineRequest represents the body of POST /api/cart/add
type addCartLineRequest struct {
	UserID      string `json:"user_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"image_url"`
}

// updateCartLineRequest represents the body of PUT /api/cart/update/{id}
type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}
