package input

import (
	"context"

	"storefront/internal/domain"
)

// OrderService interface - Input port (use case)
type OrderService interface {
	MyOrders(ctx context.Context) ([]domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	TrackOrder(ctx context.Context, orderID string) ([]domain.OrderUpdate, error)
	InitiateCheckout(ctx context.Context, request domain.CheckoutRequest) (string, error)
	CheckoutStatus(ctx context.Context, checkoutRequestID string) (*domain.CheckoutStatus, error)
}
