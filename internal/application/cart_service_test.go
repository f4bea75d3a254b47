package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/ports/output"
)

// Mock implementations for testing

// MockLocalState implements output.LocalState for testing
type MockLocalState struct {
	entries map[string][]byte

	GetFunc func(key string) ([]byte, error)
	SetFunc func(key string, value []byte) error

	// Captured values for assertions
	SetCalls    []string
	DeleteCalls []string
}

func NewMockLocalState() *MockLocalState {
	return &MockLocalState{entries: make(map[string][]byte)}
}

func (m *MockLocalState) Get(key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return m.entries[key], nil
}

func (m *MockLocalState) Set(key string, value []byte) error {
	m.SetCalls = append(m.SetCalls, key)
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	m.entries[key] = value
	return nil
}

func (m *MockLocalState) Delete(key string) error {
	m.DeleteCalls = append(m.DeleteCalls, key)
	delete(m.entries, key)
	return nil
}

func (m *MockLocalState) storedCart(t *testing.T) []domain.CartLine {
	t.Helper()
	value := m.entries[output.LocalStateKeyCart]
	if value == nil {
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(value, &lines); err != nil {
		t.Fatalf("stored cart is not valid JSON: %v", err)
	}
	return lines
}

// MockCartAPI implements output.CartAPI for testing
type MockCartAPI struct {
	FetchCartFunc  func(ctx context.Context, userID string) ([]domain.CartLine, error)
	AddLineFunc    func(ctx context.Context, userID string, line domain.CartLine) error
	UpdateLineFunc func(ctx context.Context, remoteLineID string, quantity int) error
	DeleteLineFunc func(ctx context.Context, remoteLineID string) error
	ClearCartFunc  func(ctx context.Context, userID string) error

	// Captured values for assertions
	AddedLines []domain.CartLine
	UpdatedIDs []string
	DeletedIDs []string
	ClearCalls []string
	FetchCalls int
}

func (m *MockCartAPI) FetchCart(ctx context.Context, userID string) ([]domain.CartLine, error) {
	m.FetchCalls++
	if m.FetchCartFunc != nil {
		return m.FetchCartFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCartAPI) AddLine(ctx context.Context, userID string, line domain.CartLine) error {
	m.AddedLines = append(m.AddedLines, line)
	if m.AddLineFunc != nil {
		return m.AddLineFunc(ctx, userID, line)
	}
	return nil
}

func (m *MockCartAPI) UpdateLine(ctx context.Context, remoteLineID string, quantity int) error {
	m.UpdatedIDs = append(m.UpdatedIDs, remoteLineID)
	if m.UpdateLineFunc != nil {
		return m.UpdateLineFunc(ctx, remoteLineID, quantity)
	}
	return nil
}

func (m *MockCartAPI) DeleteLine(ctx context.Context, remoteLineID string) error {
	m.DeletedIDs = append(m.DeletedIDs, remoteLineID)
	if m.DeleteLineFunc != nil {
		return m.DeleteLineFunc(ctx, remoteLineID)
	}
	return nil
}

func (m *MockCartAPI) ClearCart(ctx context.Context, userID string) error {
	m.ClearCalls = append(m.ClearCalls, userID)
	if m.ClearCartFunc != nil {
		return m.ClearCartFunc(ctx, userID)
	}
	return nil
}

func guestCart() (*CartService, *MockLocalState, *MockCartAPI) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	return NewCartService(local, remote), local, remote
}

// TestRepeatedAddsMergeIntoOneLine tests that adds with the same product id
// accumulate quantity in a single line.
func TestRepeatedAddsMergeIntoOneLine(t *testing.T) {
	cart, _, _ := guestCart()
	ctx := context.Background()

	product := domain.RawProduct{ProductID: "A", ProductName: "Kettle", Price: 100.0}
	cart.AddItem(ctx, product, 2)
	cart.AddItem(ctx, product, 3)
	cart.AddItem(ctx, product, 1)

	snapshot := cart.Snapshot()
	if len(snapshot.Lines) != 1 {
		t.Fatalf("expected one line for product A, got %d", len(snapshot.Lines))
	}
	if snapshot.Lines[0].Quantity != 6 {
		t.Errorf("expected merged quantity 6, got %d", snapshot.Lines[0].Quantity)
	}
}

// TestUpdateQuantityClampsToOne tests that non-positive quantities become 1.
func TestUpdateQuantityClampsToOne(t *testing.T) {
	cart, _, _ := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 5)

	for _, q := range []int{0, -3} {
		cart.UpdateQuantity(ctx, "A", q)
		if got := cart.Snapshot().Lines[0].Quantity; got != 1 {
			t.Errorf("UpdateQuantity with %d: expected quantity 1, got %d", q, got)
		}
	}
}

// TestUpdateQuantityNoOpsForUnknownProduct tests the silent no-op.
func TestUpdateQuantityNoOpsForUnknownProduct(t *testing.T) {
	cart, _, remote := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)
	before := cart.Snapshot()

	cart.UpdateQuantity(ctx, "missing", 4)

	after := cart.Snapshot()
	if len(after.Lines) != len(before.Lines) || after.Lines[0].Quantity != before.Lines[0].Quantity {
		t.Error("expected cart unchanged after updating a missing product")
	}
	if len(remote.UpdatedIDs) != 0 {
		t.Error("expected no remote update for a missing product")
	}
}

// TestRemoveItemNoOpsForUnknownProduct tests spec'd remove semantics.
func TestRemoveItemNoOpsForUnknownProduct(t *testing.T) {
	cart, _, _ := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)
	cart.RemoveItem(ctx, "missing")

	if got := len(cart.Snapshot().Lines); got != 1 {
		t.Errorf("expected cart unchanged, got %d lines", got)
	}

	cart.RemoveItem(ctx, "A")
	if got := len(cart.Snapshot().Lines); got != 0 {
		t.Errorf("expected empty cart after removing A, got %d lines", got)
	}
}

// TestTotalIsSumAndIdempotent tests the total over mixed lines and that a
// repeated read returns the same value.
func TestTotalIsSumAndIdempotent(t *testing.T) {
	cart, _, _ := guestCart()
	ctx := context.Background()

	if !cart.Total().IsZero() {
		t.Errorf("expected zero total for empty cart, got %s", cart.Total())
	}

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A", Price: "10.50"}, 2)
	cart.AddItem(ctx, domain.RawProduct{ProductID: "B", Price: 3.0}, 3)

	first := cart.Total()
	if first.String() != "30" {
		t.Errorf("expected total 30, got %s", first)
	}
	if second := cart.Total(); !second.Equal(first) {
		t.Errorf("expected idempotent total, got %s then %s", first, second)
	}
}

// TestClearEmptiesCartAndPersistsEmptyArray tests that clear writes an empty
// array through to local storage rather than dropping the key.
func TestClearEmptiesCartAndPersistsEmptyArray(t *testing.T) {
	cart, local, _ := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 2)
	cart.Clear(ctx)

	if got := len(cart.Snapshot().Lines); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	stored := local.storedCart(t)
	if stored == nil || len(stored) != 0 {
		t.Errorf("expected persisted empty array, got %v", stored)
	}
}

// TestGuestMutationsNeverTouchTheBackend tests that without a session no
// remote call is issued.
func TestGuestMutationsNeverTouchTheBackend(t *testing.T) {
	cart, _, remote := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)
	cart.UpdateQuantity(ctx, "A", 3)
	cart.RemoveItem(ctx, "A")
	cart.Clear(ctx)

	if len(remote.AddedLines) != 0 || len(remote.UpdatedIDs) != 0 ||
		len(remote.DeletedIDs) != 0 || len(remote.ClearCalls) != 0 || remote.FetchCalls != 0 {
		t.Error("expected no backend calls for a guest session")
	}
}

// TestOfflineAddKeepsOptimisticState tests the offline-add scenario: the
// remote call fails, the local line survives, no error escapes.
func TestOfflineAddKeepsOptimisticState(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{
		AddLineFunc: func(ctx context.Context, userID string, line domain.CartLine) error {
			return errors.New("connection refused")
		},
	}
	cart := NewCartService(local, remote)
	ctx := context.Background()

	cart.ReconcileOnLogin(ctx, domain.Session{UserID: "u1"})
	cart.AddItem(ctx, domain.RawProduct{ProductID: "A", Price: 10.0}, 2)

	snapshot := cart.Snapshot()
	if len(snapshot.Lines) != 1 || snapshot.Lines[0].Quantity != 2 {
		t.Fatalf("expected optimistic line to survive failed sync, got %+v", snapshot.Lines)
	}
	stored := local.storedCart(t)
	if len(stored) != 1 {
		t.Errorf("expected persisted optimistic line, got %v", stored)
	}
}

// TestSuccessfulAddRefetchesAuthoritativeCart tests that a synced add is
// followed by a refetch whose response replaces local state.
func TestSuccessfulAddRefetchesAuthoritativeCart(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{
		FetchCartFunc: func(ctx context.Context, userID string) ([]domain.CartLine, error) {
			return []domain.CartLine{
				{ProductID: "A", ProductName: "Kettle", Quantity: 2, RemoteLineID: "r9"},
			}, nil
		},
	}
	cart := NewCartService(local, remote)
	ctx := context.Background()

	cart.ReconcileOnLogin(ctx, domain.Session{UserID: "u1"})
	cart.AddItem(ctx, domain.RawProduct{ProductID: "A", ProductName: "Kettle"}, 2)

	snapshot := cart.Snapshot()
	if len(snapshot.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(snapshot.Lines))
	}
	if snapshot.Lines[0].RemoteLineID != "r9" {
		t.Errorf("expected backend-assigned line id r9, got %q", snapshot.Lines[0].RemoteLineID)
	}
}

// TestReconcileOnLoginMergesGuestLinesBeforeFetch tests the guest-merge
// scenario: local-only line A is pushed, then the refetched cart (A and B)
// replaces local state.
func TestReconcileOnLoginMergesGuestLinesBeforeFetch(t *testing.T) {
	local := NewMockLocalState()

	var pushedBeforeFetch bool
	remote := &MockCartAPI{}
	remote.FetchCartFunc = func(ctx context.Context, userID string) ([]domain.CartLine, error) {
		pushedBeforeFetch = len(remote.AddedLines) == 1
		return []domain.CartLine{
			{ProductID: "A", Quantity: 2, RemoteLineID: "r2"},
			{ProductID: "B", Quantity: 1, RemoteLineID: "r1"},
		}, nil
	}

	cart := NewCartService(local, remote)
	ctx := context.Background()

	// Guest accumulates a local-only line.
	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 2)

	cart.ReconcileOnLogin(ctx, domain.Session{UserID: "u1"})

	if len(remote.AddedLines) != 1 || remote.AddedLines[0].ProductID != "A" {
		t.Fatalf("expected exactly the guest line pushed, got %+v", remote.AddedLines)
	}
	if !pushedBeforeFetch {
		t.Error("expected the guest line pushed before the authoritative fetch")
	}

	snapshot := cart.Snapshot()
	if domain.FindLine(snapshot.Lines, "A") < 0 || domain.FindLine(snapshot.Lines, "B") < 0 {
		t.Errorf("expected both A and B after reconcile, got %+v", snapshot.Lines)
	}
}

// TestReconcileSkipsAlreadySyncedLines tests that lines with a remote id are
// not pushed again on login.
func TestReconcileSkipsAlreadySyncedLines(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	ctx := context.Background()

	seed, _ := json.Marshal([]domain.CartLine{
		{ProductID: "A", Quantity: 1, RemoteLineID: "r1"},
		{ProductID: "B", Quantity: 2},
	})
	local.entries[output.LocalStateKeyCart] = seed
	cart.Hydrate(ctx)

	cart.ReconcileOnLogin(ctx, domain.Session{UserID: "u1"})

	if len(remote.AddedLines) != 1 || remote.AddedLines[0].ProductID != "B" {
		t.Errorf("expected only the unsynced line pushed, got %+v", remote.AddedLines)
	}
}

// TestLogoutClearsLocalStateButNotRemoteCart tests the logout scenario: both
// entries cleared locally, no remote clear issued.
func TestLogoutClearsLocalStateButNotRemoteCart(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	ctx := context.Background()

	cart.ReconcileOnLogin(ctx, domain.Session{UserID: "u1"})
	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)

	cart.Logout()

	if cart.Session() != nil {
		t.Error("expected no session after logout")
	}
	if got := len(cart.Snapshot().Lines); got != 0 {
		t.Errorf("expected empty cart after logout, got %d lines", got)
	}
	if local.entries[output.LocalStateKeyUser] != nil || local.entries[output.LocalStateKeyCart] != nil {
		t.Error("expected user and cart entries removed from local storage")
	}
	if len(remote.ClearCalls) != 0 {
		t.Error("logout must not clear the remote cart")
	}
}

// TestHydrateToleratesCorruptState tests that corrupt persisted entries mean
// starting empty, not failing.
func TestHydrateToleratesCorruptState(t *testing.T) {
	local := NewMockLocalState()
	local.entries[output.LocalStateKeyUser] = []byte(`{broken`)
	local.entries[output.LocalStateKeyCart] = []byte(`not json at all`)
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)

	cart.Hydrate(context.Background())

	if cart.Session() != nil {
		t.Error("expected guest session for corrupt user entry")
	}
	if got := len(cart.Snapshot().Lines); got != 0 {
		t.Errorf("expected empty cart for corrupt cart entry, got %d lines", got)
	}
	if remote.FetchCalls != 0 {
		t.Error("expected no remote fetch without a restored session")
	}
}

// TestHydrateRestoresStateAndReconciles tests the happy-path restart: stored
// session and cart come back and a reconciling fetch runs.
func TestHydrateRestoresStateAndReconciles(t *testing.T) {
	local := NewMockLocalState()
	sessionValue, _ := json.Marshal(domain.Session{UserID: "u1", Name: "Jade"})
	cartValue, _ := json.Marshal([]domain.CartLine{{ProductID: "A", Quantity: 2, RemoteLineID: "r1"}})
	local.entries[output.LocalStateKeyUser] = sessionValue
	local.entries[output.LocalStateKeyCart] = cartValue

	remote := &MockCartAPI{
		FetchCartFunc: func(ctx context.Context, userID string) ([]domain.CartLine, error) {
			return []domain.CartLine{{ProductID: "A", Quantity: 3, RemoteLineID: "r1"}}, nil
		},
	}
	cart := NewCartService(local, remote)

	cart.Hydrate(context.Background())

	session := cart.Session()
	if session == nil || session.UserID != "u1" {
		t.Fatalf("expected restored session u1, got %+v", session)
	}
	snapshot := cart.Snapshot()
	if len(snapshot.Lines) != 1 || snapshot.Lines[0].Quantity != 3 {
		t.Errorf("expected remote cart to be authoritative after hydrate, got %+v", snapshot.Lines)
	}
}

// TestFailedRefetchKeepsLocalState tests offline hydrate: the fetch fails and
// the locally restored cart stays usable.
func TestFailedRefetchKeepsLocalState(t *testing.T) {
	local := NewMockLocalState()
	sessionValue, _ := json.Marshal(domain.Session{UserID: "u1"})
	cartValue, _ := json.Marshal([]domain.CartLine{{ProductID: "A", Quantity: 2}})
	local.entries[output.LocalStateKeyUser] = sessionValue
	local.entries[output.LocalStateKeyCart] = cartValue

	remote := &MockCartAPI{
		FetchCartFunc: func(ctx context.Context, userID string) ([]domain.CartLine, error) {
			return nil, errors.New("connection refused")
		},
	}
	cart := NewCartService(local, remote)

	cart.Hydrate(context.Background())

	snapshot := cart.Snapshot()
	if len(snapshot.Lines) != 1 || snapshot.Lines[0].Quantity != 2 {
		t.Errorf("expected local cart to survive a failed refetch, got %+v", snapshot.Lines)
	}
	if snapshot.Loading {
		t.Error("expected loading flag cleared after a failed refetch")
	}
}

// TestEveryMutationWritesThroughToLocalStorage tests synchronous persistence
// of add, update and remove.
func TestEveryMutationWritesThroughToLocalStorage(t *testing.T) {
	cart, local, _ := guestCart()
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)
	cart.UpdateQuantity(ctx, "A", 4)
	cart.RemoveItem(ctx, "A")

	writes := 0
	for _, key := range local.SetCalls {
		if key == output.LocalStateKeyCart {
			writes++
		}
	}
	if writes != 3 {
		t.Errorf("expected 3 cart write-throughs, got %d", writes)
	}
}
