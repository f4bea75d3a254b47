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
var _ input.OrderService = (*OrderService)(nil)

// OrderService struct - Application service for order history, tracking,
// back-office status changes and checkout initiation.
type OrderService struct {
	api  output.OrderAPI
	cart input.CartStore
}

// NewOrderService func
func NewOrderService(api output.OrderAPI, cart input.CartStore) *OrderService {
	return &OrderService{
		api:  api,
		cart: cart,
	}
}

// MyOrders func - Use case: the signed-in user's order history.
// The identity comes from the gateway's session, never from the caller.
func (s *OrderService) MyOrders(ctx context.Context) ([]domain.Order, error) {
	session := s.cart.Session()
	if session == nil {
		return nil, fmt.Errorf("list orders: %w", domain.ErrUnauthenticated)
	}
	orders, err := s.api.ListOrders(ctx, session.Email)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return orders, nil
}

// AllOrders func - Use case: admin back-office order list
func (s *OrderService) AllOrders(ctx context.Context) ([]domain.Order, error) {
	if !s.cart.Session().IsAdmin() {
		return nil, fmt.Errorf("list all orders: %w", domain.ErrUnauthenticated)
	}
	return s.api.ListAllOrders(ctx)
}

// UpdateStatus func - Use case: admin moves an order through fulfilment
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !s.cart.Session().IsAdmin() {
		return fmt.Errorf("update order status: %w", domain.ErrUnauthenticated)
	}
	return s.api.UpdateOrderStatus(ctx, orderID, status)
}

// TrackOrder func - Use case: tracking events for one order
func (s *OrderService) TrackOrder(ctx context.Context, orderID string) ([]domain.OrderUpdate, error) {
	return s.api.OrderUpdates(ctx, orderID)
}

// InitiateCheckout func - Use case: start a mobile-money payment.
// Guests may check out too; when a session is present its user id is attached.
func (s *OrderService) InitiateCheckout(ctx context.Context, request domain.CheckoutRequest) (string, error) {
	if session := s.cart.Session(); session != nil && request.UserID == "" {
		request.UserID = session.UserID
	}
	if len(request.Items) == 0 {
		request.Items = s.cart.Snapshot().Lines
	}
	if request.Amount.IsZero() {
		request.Amount = s.cart.Total()
	}

	checkoutRequestID, err := s.api.InitiateCheckout(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}
	logrus.Infof("Checkout initiated: %s", checkoutRequestID)
	return checkoutRequestID, nil
}

// CheckoutStatus func - Use case: poll a payment initiation
func (s *OrderService) CheckoutStatus(ctx context.Context, checkoutRequestID string) (*domain.CheckoutStatus, error) {
	return s.api.CheckoutStatus(ctx, checkoutRequestID)
}
