package input

import (
	"context"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// CartStore interface - Input port (use case)
// The session-scoped cart store: single source of truth for the cart during a
// browsing session. Mutations apply optimistically to local state, write
// through to durable local storage, then sync best-effort against the remote
// cart. None of the mutating operations return remote-sync failures; those
// are swallowed at this boundary and only logged.
type CartStore interface {
	// Hydrate loads session and cart from durable local storage, then, if a
	// session is present, reconciles against the remote cart. Never fails the
	// caller: corrupt or absent state means starting empty.
	Hydrate(ctx context.Context)

	// AddItem normalizes the product payload into a cart line and adds it,
	// merging quantities with an existing line for the same product.
	AddItem(ctx context.Context, product domain.RawProduct, quantity int)

	// UpdateQuantity sets a line's quantity, clamped to a minimum of 1.
	// Silently no-ops when the product is not in the cart.
	UpdateQuantity(ctx context.Context, productID string, quantity int)

	// RemoveItem deletes a line. Silently no-ops when absent.
	RemoveItem(ctx context.Context, productID string)

	// Clear empties the cart locally and, for signed-in sessions, remotely.
	Clear(ctx context.Context)

	// Total returns the sum of unit price times quantity over all lines.
	// Pure read, zero for an empty cart.
	Total() decimal.Decimal

	// Snapshot returns a read-only copy of the cart for rendering.
	Snapshot() domain.CartSnapshot

	// ReconcileOnLogin installs the session, pushes local-only lines to the
	// remote cart, then replaces local state with the backend's authoritative
	// cart. At-least-once: re-running the merge may duplicate remote lines.
	ReconcileOnLogin(ctx context.Context, session domain.Session)

	// Session returns the current principal, or nil for guests.
	Session() *domain.Session

	// UpdateSession replaces the stored principal without touching cart state.
	// Used for profile edits on an already-present session.
	UpdateSession(session domain.Session)

	// Logout clears session and cart from memory and durable local storage.
	// The remote cart is deliberately left untouched.
	Logout()
}
