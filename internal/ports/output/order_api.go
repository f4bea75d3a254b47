package output

import (
	"context"

	"storefront/internal/domain"
)

// OrderAPI interface - Output port
// Order history, tracking, back-office status changes and checkout initiation.
type OrderAPI interface {
	// ListOrders returns the signed-in user's orders.
	ListOrders(ctx context.Context, email string) ([]domain.Order, error)

	// ListAllOrders returns every order, for the admin back office.
	ListAllOrders(ctx context.Context) ([]domain.Order, error)

	// UpdateOrderStatus sets a new fulfilment status on an order.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error

	// OrderUpdates returns the tracking events recorded for an order.
	OrderUpdates(ctx context.Context, orderID string) ([]domain.OrderUpdate, error)

	// InitiateCheckout forwards a mobile-money payment request and returns the
	// gateway's checkout request id for later polling.
	InitiateCheckout(ctx context.Context, request domain.CheckoutRequest) (string, error)

	// CheckoutStatus polls the backend for the outcome of a payment initiation.
	CheckoutStatus(ctx context.Context, checkoutRequestID string) (*domain.CheckoutStatus, error)
}
