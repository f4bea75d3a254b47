package domain

import (
	"github.com/shopspring/decimal"
)

// UnnamedProduct is the display name used when upstream product data carries no name at all.
const UnnamedProduct = "Unnamed Product"

// CartLine struct - Core domain entity: one product's presence in the cart.
// ProductID is the canonical identifier and is unique within a cart.
// RemoteLineID is the backend-assigned line id; empty means the line exists
// only locally (guest cart, or a sync that has not succeeded yet).
type CartLine struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ImageRef     string          `json:"image_url"`
	RemoteLineID string          `json:"remote_line_id,omitempty"`
}

// Synced reports whether the backend knows this line.
func (l CartLine) Synced() bool {
	return l.RemoteLineID != ""
}

// Subtotal returns UnitPrice * Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot struct - Read-only view of the cart handed to the presentation layer.
type CartSnapshot struct {
	Lines   []CartLine
	Loading bool
	Total   decimal.Decimal
}

// CartTotal sums UnitPrice * Quantity over all lines. Returns zero for an empty cart.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// RawProduct struct - The heterogeneous product payload accepted by the cart.
// Upstream sources disagree on field names (price vs selling_price, product_name
// vs name, image_url vs image) and on whether prices are numbers or strings,
// so every field is optional and typed loosely.
type RawProduct struct {
	ProductID    string      `json:"product_id"`
	ProductName  string      `json:"product_name"`
	Name         string      `json:"name"`
	Price        interface{} `json:"price"`
	SellingPrice interface{} `json:"selling_price"`
	Quantity     int         `json:"quantity"`
	ImageURL     string      `json:"image_url"`
	Image        string      `json:"image"`
	RemoteLineID string      `json:"id"`
}

// NormalizeProduct converts a raw product payload into a CartLine.
// Malformed upstream data must never crash the cart: missing names fall back
// to a placeholder, unparseable or negative prices become zero, and a
// non-positive quantity becomes 1.
func NormalizeProduct(raw RawProduct) CartLine {
	name := raw.ProductName
	if name == "" {
		name = raw.Name
	}
	if name == "" {
		name = UnnamedProduct
	}

	price := parsePrice(raw.Price)
	if price.IsZero() {
		price = parsePrice(raw.SellingPrice)
	}
	if price.IsNegative() {
		price = decimal.Zero
	}

	quantity := raw.Quantity
	if quantity < 1 {
		quantity = 1
	}

	image := raw.ImageURL
	if image == "" {
		image = raw.Image
	}

	return CartLine{
		ProductID:    raw.ProductID,
		ProductName:  name,
		UnitPrice:    price,
		Quantity:     quantity,
		ImageRef:     image,
		RemoteLineID: raw.RemoteLineID,
	}
}

// parsePrice accepts the number-or-string price encodings seen in backend
// payloads and returns zero for anything it cannot read.
func parsePrice(v interface{}) decimal.Decimal {
	switch p := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(p)
	case float32:
		return decimal.NewFromFloat32(p)
	case int:
		return decimal.NewFromInt(int64(p))
	case int64:
		return decimal.NewFromInt(p)
	case string:
		if p == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(p)
		if err != nil {
			return decimal.Zero
		}
		return d
	case decimal.Decimal:
		return p
	default:
		return decimal.Zero
	}
}

// FindLine returns the index of the line with the given product id, or -1.
func FindLine(lines []CartLine, productID string) int {
	for i, line := range lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// ClampQuantity coerces a requested quantity to the minimum of 1.
// Values <= 0 are never rejected, only clamped.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}
