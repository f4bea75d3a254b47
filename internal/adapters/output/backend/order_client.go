package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"
)

// Compile-time check
var _ output.OrderAPI = (*OrderClient)(nil)

// OrderClient struct - Output adapter for orders, tracking and checkout initiation
type OrderClient struct {
	client *Client
}

// NewOrderClient func
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// ListOrders func - GET /api/orders?email=...
func (a *OrderClient) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	var records []orderRecord
	path := "/api/orders?email=" + url.QueryEscape(email)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return toOrders(records), nil
}

// ListAllOrders func - GET /api/admin_get_orders
func (a *OrderClient) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	var records []orderRecord
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/admin_get_orders", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return toOrders(records), nil
}

// UpdateOrderStatus func - PUT /api/update_order_status/{orderId}
func (a *OrderClient) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf("/api/update_order_status/%s", orderID)
	if err := a.client.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// OrderUpdates func - GET /api/order_updates/{orderId}
func (a *OrderClient) OrderUpdates(ctx context.Context, orderID string) ([]domain.OrderUpdate, error) {
	var records []orderUpdateRecord
	path := fmt.Sprintf("/api/order_updates/%s", orderID)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch order updates: %w", err)
	}

	updates := make([]domain.OrderUpdate, 0, len(records))
	for _, record := range records {
		update := domain.OrderUpdate{
			OrderID: record.OrderID.String(),
			Status:  domain.OrderStatus(record.Status),
			Note:    record.Note,
		}
		if ts, err := time.Parse(time.RFC3339, record.Timestamp); err == nil {
			update.Timestamp = &ts
		}
		updates = append(updates, update)
	}
	return updates, nil
}

// InitiateCheckout func - POST /api/mpesa_payment
// The response is forwarded untouched apart from extracting the checkout
// request id; result-code semantics belong to the payment gateway.
func (a *OrderClient) InitiateCheckout(ctx context.Context, request domain.CheckoutRequest) (string, error) {
	body := map[string]interface{}{
		"user_id":      request.UserID,
		"phone_number": request.PhoneNumber,
		"amount":       request.Amount.String(),
		"items":        request.Items,
		"address":      request.Address,
	}

	var resp checkoutResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/mpesa_payment", body, &resp); err != nil {
		return "", fmt.Errorf("failed to initiate checkout: %w", err)
	}
	if resp.CheckoutRequestID == "" {
		return "", fmt.Errorf("%w: backend returned no checkout request id", domain.ErrInvalidRequest)
	}
	return resp.CheckoutRequestID.String(), nil
}

// CheckoutStatus func - GET /api/order-status/{checkoutRequestId}
// Result code and description pass through verbatim. The one interpretation
// made here is the gateway's published success code "0", surfaced as the Paid
// flag so callers do not have to know it.
func (a *OrderClient) CheckoutStatus(ctx context.Context, checkoutRequestID string) (*domain.CheckoutStatus, error) {
	var resp checkoutStatusResponse
	path := fmt.Sprintf("/api/order-status/%s", checkoutRequestID)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to poll checkout status: %w", err)
	}

	return &domain.CheckoutStatus{
		CheckoutRequestID: checkoutRequestID,
		ResultCode:        resp.ResultCode.String(),
		ResultDesc:        resp.ResultDesc,
		Paid:              resp.ResultCode.String() == "0",
	}, nil
}

func toOrders(records []orderRecord) []domain.Order {
	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		order := domain.Order{
			OrderID:     record.OrderID.String(),
			UserID:      record.UserID.String(),
			Email:       record.Email,
			Status:      domain.OrderStatus(record.Status),
			PhoneNumber: record.PhoneNumber,
			Address:     record.Address,
		}
		order.Total = domain.NormalizeProduct(domain.RawProduct{Price: record.Total}).UnitPrice
		for _, item := range record.Items {
			order.Items = append(order.Items, domain.NormalizeProduct(domain.RawProduct{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Name:         item.Name,
				Price:        item.Price,
				SellingPrice: item.SellingPrice,
				Quantity:     item.Quantity,
				ImageURL:     item.ImageURL,
				Image:        item.Image,
			}))
		}
		if ts, err := time.Parse(time.RFC3339, record.CreatedAt); err == nil {
			order.CreatedAt = &ts
		}
		orders = append(orders, order)
	}
	return orders
}

// API request/response structures for the backend's order resource

type orderRecord struct {
	OrderID     flexibleID       `json:"order_id"`
	UserID      flexibleID       `json:"user_id"`
	Email       string           `json:"email"`
	Status      string           `json:"status"`
	Total       interface{}      `json:"total"`
	Items       []cartLineRecord `json:"items"`
	PhoneNumber string           `json:"phone_number"`
	Address     string           `json:"address"`
	CreatedAt   string           `json:"created_at"`
}

type orderUpdateRecord struct {
	OrderID   flexibleID `json:"order_id"`
	Status    string     `json:"status"`
	Note      string     `json:"note"`
	Timestamp string     `json:"timestamp"`
}

type checkoutResponse struct {
	CheckoutRequestID flexibleID `json:"checkout_request_id"`
	Message           string     `json:"message"`
}

type checkoutStatusResponse struct {
	ResultCode flexibleID `json:"result_code"`
	ResultDesc string     `json:"result_desc"`
}
