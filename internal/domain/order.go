package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus type
type OrderStatus string

const (
	// OrderStatusPending const
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing const
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped const
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered const
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled const
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order struct - Core domain entity: a placed order as reported by the backend.
type Order struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	Email       string          `json:"email,omitempty"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Items       []CartLine      `json:"items,omitempty"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Address     string          `json:"address,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
}

// OrderUpdate struct - One tracking event for an order.
type OrderUpdate struct {
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	Timestamp *time.Time  `json:"timestamp,omitempty"`
}

// CheckoutRequest struct - Mobile-money payment initiation.
// The gateway forwards this as-is; interpreting gateway result codes is the
// payment provider's business, not ours.
type CheckoutRequest struct {
	UserID      string          `json:"user_id"`
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
	Items       []CartLine      `json:"items,omitempty"`
	Address     string          `json:"address,omitempty"`
}

// CheckoutStatus struct - Backend's view of a payment initiation.
type CheckoutStatus struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	ResultCode        string `json:"result_code,omitempty"`
	ResultDesc        string `json:"result_desc,omitempty"`
	Paid              bool   `json:"paid"`
}
