package application

import (
	"context"
	"encoding/json"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CartService implements the CartStore port
var _ input.CartStore = (*CartService)(nil)

// CartService struct - The session-scoped cart store.
//
// Single source of truth for the cart during a browsing session. Every
// mutation applies optimistically to in-memory state and writes through to
// durable local storage before any remote call, so a restart never loses an
// edit already shown to the user. Remote sync is best-effort: failures are
// logged and swallowed here, never surfaced to callers, and the local
// optimistic state stays the user-visible truth until a later refetch
// reconciles it. After a successful remote add the backend's cart replaces
// local state wholesale; a late refetch overwriting a newer local edit is an
// accepted race.
type CartService struct {
	local  output.LocalState
	remote output.CartAPI

	mu      sync.Mutex
	lines   []domain.CartLine
	loading bool
	session *domain.Session
}

// NewCartService func - Creates the cart store
func NewCartService(local output.LocalState, remote output.CartAPI) *CartService {
	return &CartService{
		local:  local,
		remote: remote,
	}
}

// Hydrate func - Use case: restore session and cart from local storage.
// Corrupt or absent entries mean starting empty; this never fails the caller.
// A restored session triggers a reconciling fetch from the remote cart.
func (s *CartService) Hydrate(ctx context.Context) {
	s.mu.Lock()

	if value, err := s.local.Get(output.LocalStateKeyUser); err != nil {
		logrus.Errorf("Failed to read stored session: %v", err)
	} else if len(value) > 0 {
		var session domain.Session
		if err := json.Unmarshal(value, &session); err != nil {
			logrus.Warnf("Stored session is corrupt, starting as guest: %v", err)
		} else {
			s.session = &session
		}
	}

	if value, err := s.local.Get(output.LocalStateKeyCart); err != nil {
		logrus.Errorf("Failed to read stored cart: %v", err)
	} else if len(value) > 0 {
		var lines []domain.CartLine
		if err := json.Unmarshal(value, &lines); err != nil {
			logrus.Warnf("Stored cart is corrupt, starting empty: %v", err)
		} else {
			s.lines = lines
		}
	}

	session := s.session
	s.mu.Unlock()

	logrus.Infof("Cart hydrated: %d lines, signed in: %t", len(s.Snapshot().Lines), session != nil)

	if session != nil {
		s.refetch(ctx, session.UserID)
	}
}

// AddItem func - Use case: add a product to the cart.
// The payload is normalized into a cart line (malformed fields become safe
// defaults), merged by product id, persisted, then synced for signed-in
// sessions. Never returns an error: a failed sync keeps the optimistic line.
func (s *CartService) AddItem(ctx context.Context, product domain.RawProduct, quantity int) {
	line := domain.NormalizeProduct(product)
	line.Quantity = domain.ClampQuantity(quantity)

	s.mu.Lock()
	if idx := domain.FindLine(s.lines, line.ProductID); idx >= 0 {
		s.lines[idx].Quantity += line.Quantity
	} else {
		s.lines = append(s.lines, line)
	}
	s.persistCartLocked()
	session := s.session
	s.mu.Unlock()

	if session == nil {
		return
	}

	if err := s.remote.AddLine(ctx, session.UserID, line); err != nil {
		logrus.Warnf("Cart add sync failed, keeping optimistic state: %v", err)
		return
	}
	// Remote is authoritative for remote line ids and price corrections.
	s.refetch(ctx, session.UserID)
}

// UpdateQuantity func - Use case: set a line's quantity.
// Quantities <= 0 are clamped to 1, never rejected. Silently no-ops when the
// product is not in the cart. A failed remote update is logged, not reverted.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	quantity = domain.ClampQuantity(quantity)

	s.mu.Lock()
	idx := domain.FindLine(s.lines, productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[idx].Quantity = quantity
	remoteLineID := s.lines[idx].RemoteLineID
	s.persistCartLocked()
	session := s.session
	s.mu.Unlock()

	if session == nil || remoteLineID == "" {
		return
	}
	if err := s.remote.UpdateLine(ctx, remoteLineID, quantity); err != nil {
		logrus.Warnf("Cart quantity sync failed, keeping optimistic state: %v", err)
	}
}

// RemoveItem func - Use case: drop a line from the cart.
// Silently no-ops when absent. A failed remote delete is logged, not reverted.
func (s *CartService) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	idx := domain.FindLine(s.lines, productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	remoteLineID := s.lines[idx].RemoteLineID
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	s.persistCartLocked()
	session := s.session
	s.mu.Unlock()

	if session == nil || remoteLineID == "" {
		return
	}
	if err := s.remote.DeleteLine(ctx, remoteLineID); err != nil {
		logrus.Warnf("Cart remove sync failed, keeping optimistic state: %v", err)
	}
}

// Clear func - Use case: empty the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.persistCartLocked()
	session := s.session
	s.mu.Unlock()

	if session == nil {
		return
	}
	if err := s.remote.ClearCart(ctx, session.UserID); err != nil {
		logrus.Warnf("Cart clear sync failed: %v", err)
	}
}

// Total func - Pure read: sum of unit price times quantity over all lines.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.lines)
}

// Snapshot func - Read-only copy of the cart for rendering.
func (s *CartService) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return domain.CartSnapshot{
		Lines:   lines,
		Loading: s.loading,
		Total:   domain.CartTotal(s.lines),
	}
}

// Session func
func (s *CartService) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// UpdateSession func - Replaces the stored principal without touching cart
// state. For profile edits on an already-present session; login transitions
// go through ReconcileOnLogin instead.
func (s *CartService) UpdateSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	s.persistSessionLocked()
}

// ReconcileOnLogin func - Use case: merge a guest cart into the remote cart.
//
// Local-only lines (no remote line id) are pushed to the backend first, then
// the whole local cart is replaced by a fresh remote fetch. The push must
// happen before the fetch or the replace step would silently drop guest
// lines. Per-line push failures are tolerated: a failed line simply stays
// unsynced and is pushed again on the next login. At-least-once by design;
// the backend is the arbiter of duplicate lines.
func (s *CartService) ReconcileOnLogin(ctx context.Context, session domain.Session) {
	s.mu.Lock()
	s.session = &session
	s.persistSessionLocked()
	pending := make([]domain.CartLine, 0, len(s.lines))
	for _, line := range s.lines {
		if !line.Synced() {
			pending = append(pending, line)
		}
	}
	s.mu.Unlock()

	for _, line := range pending {
		if err := s.remote.AddLine(ctx, session.UserID, line); err != nil {
			logrus.Warnf("Login merge failed for product %s, line stays unsynced: %v", line.ProductID, err)
		}
	}

	s.refetch(ctx, session.UserID)
}

// Logout func - Use case: end the session.
// Clears session and cart from memory and local storage. Deliberately does
// not clear the remote cart: the account's server-side cart must survive a
// logout so the user sees it again next login.
func (s *CartService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.lines = nil
	if err := s.local.Delete(output.LocalStateKeyUser); err != nil {
		logrus.Errorf("Failed to clear stored session: %v", err)
	}
	if err := s.local.Delete(output.LocalStateKeyCart); err != nil {
		logrus.Errorf("Failed to clear stored cart: %v", err)
	}
	logrus.Info("Session and cart cleared, remote cart left untouched")
}

// refetch replaces local state with the backend's authoritative cart.
// A failed fetch leaves local state as-is; the cart keeps working offline.
func (s *CartService) refetch(ctx context.Context, userID string) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	lines, err := s.remote.FetchCart(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		logrus.Warnf("Cart refetch failed, keeping local state: %v", err)
		return
	}
	s.lines = lines
	s.persistCartLocked()
}

// persistCartLocked writes the cart through to local storage. Caller holds mu.
// An empty cart is stored as an empty array, not removed.
func (s *CartService) persistCartLocked() {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	value, err := json.Marshal(lines)
	if err != nil {
		logrus.Errorf("Failed to serialize cart: %v", err)
		return
	}
	if err := s.local.Set(output.LocalStateKeyCart, value); err != nil {
		logrus.Errorf("Failed to persist cart: %v", err)
	}
}

// persistSessionLocked writes the session through to local storage. Caller holds mu.
func (s *CartService) persistSessionLocked() {
	value, err := json.Marshal(s.session)
	if err != nil {
		logrus.Errorf("Failed to serialize session: %v", err)
		return
	}
	if err := s.local.Set(output.LocalStateKeyUser, value); err != nil {
		logrus.Errorf("Failed to persist session: %v", err)
	}
}
