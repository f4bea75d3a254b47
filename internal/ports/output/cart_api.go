package output

import (
	"context"

	"storefront/internal/domain"
)

// CartAPI interface - Output port
// The remote per-user cart owned by the shop backend. The backend is
// authoritative: fetches after a successful mutation replace local state,
// and RemoteLineID values only ever come from here.
type CartAPI interface {
	// FetchCart returns the user's cart lines as the backend holds them.
	FetchCart(ctx context.Context, userID string) ([]domain.CartLine, error)

	// AddLine pushes one normalized line into the user's remote cart.
	// The backend decides whether it merges with an existing line.
	AddLine(ctx context.Context, userID string, line domain.CartLine) error

	// UpdateLine changes the quantity of a line the backend already knows,
	// keyed by the backend-assigned line id.
	UpdateLine(ctx context.Context, remoteLineID string, quantity int) error

	// DeleteLine removes a line keyed by the backend-assigned line id.
	DeleteLine(ctx context.Context, remoteLineID string) error

	// ClearCart removes every line in the user's remote cart.
	ClearCart(ctx context.Context, userID string) error
}
