package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestNormalizeProductFallsBackThroughNameFields tests that the display name is
// taken from product_name, then name, then the placeholder.
func TestNormalizeProductFallsBackThroughNameFields(t *testing.T) {
	line := NormalizeProduct(RawProduct{ProductID: "p1", ProductName: "Kettle"})
	if line.ProductName != "Kettle" {
		t.Errorf("expected product_name to win, got %q", line.ProductName)
	}

	line = NormalizeProduct(RawProduct{ProductID: "p2", Name: "Toaster"})
	if line.ProductName != "Toaster" {
		t.Errorf("expected name fallback, got %q", line.ProductName)
	}

	line = NormalizeProduct(RawProduct{ProductID: "p3"})
	if line.ProductName != UnnamedProduct {
		t.Errorf("expected placeholder name, got %q", line.ProductName)
	}
}

// TestNormalizeProductNeverFailsOnMalformedPrices tests that unparseable,
// missing or negative price fields become zero instead of an error.
func TestNormalizeProductNeverFailsOnMalformedPrices(t *testing.T) {
	cases := []struct {
		name     string
		raw      RawProduct
		expected string
	}{
		{"missing price", RawProduct{ProductID: "a"}, "0"},
		{"numeric price", RawProduct{ProductID: "a", Price: 129.99}, "129.99"},
		{"string price", RawProduct{ProductID: "a", Price: "45.50"}, "45.5"},
		{"garbage string", RawProduct{ProductID: "a", Price: "not-a-price"}, "0"},
		{"selling_price fallback", RawProduct{ProductID: "a", SellingPrice: 80}, "80"},
		{"negative price clamped", RawProduct{ProductID: "a", Price: -3.0}, "0"},
		{"price wins over selling_price", RawProduct{ProductID: "a", Price: 10.0, SellingPrice: 99.0}, "10"},
	}

	for _, tc := range cases {
		line := NormalizeProduct(tc.raw)
		if line.UnitPrice.String() != tc.expected {
			t.Errorf("%s: expected price %s, got %s", tc.name, tc.expected, line.UnitPrice)
		}
	}
}

// TestNormalizeProductDefaultsQuantityToOne tests that a missing or
// non-positive quantity is coerced to 1.
func TestNormalizeProductDefaultsQuantityToOne(t *testing.T) {
	if got := NormalizeProduct(RawProduct{ProductID: "a"}).Quantity; got != 1 {
		t.Errorf("expected default quantity 1, got %d", got)
	}
	if got := NormalizeProduct(RawProduct{ProductID: "a", Quantity: -2}).Quantity; got != 1 {
		t.Errorf("expected clamped quantity 1, got %d", got)
	}
	if got := NormalizeProduct(RawProduct{ProductID: "a", Quantity: 4}).Quantity; got != 4 {
		t.Errorf("expected quantity 4, got %d", got)
	}
}

// TestNormalizeProductImageFallback tests the image_url then image fallback chain.
func TestNormalizeProductImageFallback(t *testing.T) {
	line := NormalizeProduct(RawProduct{ProductID: "a", Image: "kettle.jpg"})
	if line.ImageRef != "kettle.jpg" {
		t.Errorf("expected image fallback, got %q", line.ImageRef)
	}
	line = NormalizeProduct(RawProduct{ProductID: "a", ImageURL: "https://cdn/x.png", Image: "kettle.jpg"})
	if line.ImageRef != "https://cdn/x.png" {
		t.Errorf("expected image_url to win, got %q", line.ImageRef)
	}
}

// TestCartTotalSumsUnitPriceTimesQuantity tests the total over several lines.
func TestCartTotalSumsUnitPriceTimesQuantity(t *testing.T) {
	lines := []CartLine{
		{ProductID: "a", UnitPrice: decimal.RequireFromString("10.50"), Quantity: 2},
		{ProductID: "b", UnitPrice: decimal.RequireFromString("3"), Quantity: 3},
	}

	if got := CartTotal(lines); !got.Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected total 30, got %s", got)
	}
}

// TestCartTotalOfEmptyCartIsZero tests that the empty cart totals to zero.
func TestCartTotalOfEmptyCartIsZero(t *testing.T) {
	if got := CartTotal(nil); !got.IsZero() {
		t.Errorf("expected zero total for empty cart, got %s", got)
	}
}

// TestClampQuantityCoercesNonPositiveValuesToOne tests the minimum-quantity rule.
func TestClampQuantityCoercesNonPositiveValuesToOne(t *testing.T) {
	for _, q := range []int{-5, -1, 0} {
		if got := ClampQuantity(q); got != 1 {
			t.Errorf("ClampQuantity(%d): expected 1, got %d", q, got)
		}
	}
	if got := ClampQuantity(7); got != 7 {
		t.Errorf("ClampQuantity(7): expected 7, got %d", got)
	}
}

// TestFindLineReturnsMinusOneForMissingProduct tests lookup by product id.
func TestFindLineReturnsMinusOneForMissingProduct(t *testing.T) {
	lines := []CartLine{{ProductID: "a"}, {ProductID: "b"}}
	if idx := FindLine(lines, "b"); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	if idx := FindLine(lines, "zzz"); idx != -1 {
		t.Errorf("expected -1 for missing product, got %d", idx)
	}
}
