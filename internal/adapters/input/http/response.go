package http

import (
	"net/http"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, Sign in to continue"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Not found"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The shop backend is unreachable"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// CartLineResponse struct - HTTP response DTO for one cart line
	CartLineResponse struct {
		ProductID   string          `json:"product_id"`
		ProductName string          `json:"product_name"`
		Price       decimal.Decimal `json:"price"`
		Quantity    int             `json:"quantity"`
		Subtotal    decimal.Decimal `json:"subtotal"`
		ImageURL    string          `json:"image_url,omitempty"`
		Synced      bool            `json:"synced"`
	}

	// CartResponse struct - HTTP response DTO for the whole cart
	CartResponse struct {
		Items   []CartLineResponse `json:"items"`
		Total   decimal.Decimal    `json:"total"`
		Loading bool               `json:"loading"`
	}

	// SessionResponse struct - HTTP response DTO for the signed-in principal
	SessionResponse struct {
		UserID       string `json:"user_id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		ProfilePhoto string `json:"profile_photo,omitempty"`
		PhoneNumber  string `json:"phone_number,omitempty"`
		Address      string `json:"address,omitempty"`
		IDNumber     string `json:"id_number,omitempty"`
	}

	// CheckoutResponse struct - HTTP response DTO for a payment initiation
	CheckoutResponse struct {
		CheckoutRequestID string `json:"checkout_request_id"`
	}
)

func toCartResponse(snapshot domain.CartSnapshot) CartResponse {
	items := make([]CartLineResponse, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, CartLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal(),
			ImageURL:    line.ImageRef,
			Synced:      line.Synced(),
		})
	}
	return CartResponse{
		Items:   items,
		Total:   snapshot.Total,
		Loading: snapshot.Loading,
	}
}

func toSessionResponse(session *domain.Session) *SessionResponse {
	if session == nil {
		return nil
	}
	return &SessionResponse{
		UserID:       session.UserID,
		Name:         session.Name,
		Email:        session.Email,
		Role:         string(session.Role),
		ProfilePhoto: session.ProfilePhoto,
		PhoneNumber:  session.PhoneNumber,
		Address:      session.Address,
		IDNumber:     session.IDNumber,
	}
}
