package domain

import "github.com/shopspring/decimal"

// Product struct - Core domain entity: a catalog item available for purchase.
type Product struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// NewProductRequest struct - Admin request to add a catalog item.
type NewProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"image_url"`
}
