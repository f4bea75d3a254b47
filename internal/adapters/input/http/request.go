package http

type (
	// AddCartItemRequest struct - HTTP request DTO
	// The product payload is forwarded loosely typed: upstream product sources
	// disagree on field names and price encodings, and normalization is the
	// cart's job, not the transport's.
	AddCartItemRequest struct {
		ProductID    string      `json:"product_id" validate:"required" form:"product_id"`
		ProductName  string      `json:"product_name" validate:"omitempty" form:"product_name"`
		Name         string      `json:"name" validate:"omitempty" form:"name"`
		Price        interface{} `json:"price" validate:"omitempty"`
		SellingPrice interface{} `json:"selling_price" validate:"omitempty"`
		Quantity     int         `json:"quantity" validate:"omitempty" form:"quantity"`
		ImageURL     string      `json:"image_url" validate:"omitempty" form:"image_url"`
		Image        string      `json:"image" validate:"omitempty" form:"image"`
	}

	// UpdateCartItemRequest struct - HTTP request DTO
	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required" form:"quantity"`
	}

	// LoginRequest struct - HTTP request DTO
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email" form:"email"`
		Password string `json:"password" validate:"required" form:"password"`
	}

	// RegisterRequest struct - HTTP request DTO
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,max=100" form:"name"`
		Email    string `json:"email" validate:"required,email" form:"email"`
		Password string `json:"password" validate:"required,min=6" form:"password"`
	}

	// ProfileUpdateRequest struct - HTTP request DTO, nil fields untouched
	ProfileUpdateRequest struct {
		Name         *string `json:"name" validate:"omitempty,max=100" form:"name"`
		ProfilePhoto *string `json:"profile_photo" validate:"omitempty" form:"profile_photo"`
		PhoneNumber  *string `json:"phone_number" validate:"omitempty" form:"phone_number"`
		Address      *string `json:"address" validate:"omitempty" form:"address"`
		IDNumber     *string `json:"id_number" validate:"omitempty" form:"id_number"`
	}

	// NewProductRequest struct - HTTP request DTO
	NewProductRequest struct {
		Name         string `json:"name" validate:"required,max=200" form:"name"`
		Description  string `json:"description" validate:"omitempty" form:"description"`
		Category     string `json:"category" validate:"omitempty" form:"category"`
		SellingPrice string `json:"selling_price" validate:"required" form:"selling_price"`
		Stock        int    `json:"stock" validate:"omitempty,gte=0" form:"stock"`
		ImageURL     string `json:"image_url" validate:"omitempty" form:"image_url"`
	}

	// CheckoutRequest struct - HTTP request DTO for mobile-money payment
	CheckoutRequest struct {
		PhoneNumber string `json:"phone_number" validate:"required" form:"phone_number"`
		Address     string `json:"address" validate:"omitempty" form:"address"`
	}

	// OrderStatusRequest struct - HTTP request DTO
	OrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled" form:"status"`
	}

	// UserUpdateRequest struct - HTTP request DTO for admin user edits
	UserUpdateRequest struct {
		Name        *string `json:"name" validate:"omitempty,max=100" form:"name"`
		Email       *string `json:"email" validate:"omitempty,email" form:"email"`
		Role        *string `json:"role" validate:"omitempty,oneof=customer admin" form:"role"`
		PhoneNumber *string `json:"phone_number" validate:"omitempty" form:"phone_number"`
		Address     *string `json:"address" validate:"omitempty" form:"address"`
	}

	// SendMessageRequest struct - HTTP request DTO
	SendMessageRequest struct {
		ReceiverID string `json:"receiver_id" validate:"required" form:"receiver_id"`
		Message    string `json:"message" validate:"required,max=2000" form:"message"`
	}

	// ChatHistoryRequest struct - HTTP query request DTO
	ChatHistoryRequest struct {
		PartnerID string `json:"partner_id" validate:"required" form:"partner_id" query:"partner_id"`
	}
)
