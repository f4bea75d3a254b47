package application

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

// MockAuthAPI implements output.AuthAPI for testing
type MockAuthAPI struct {
	LoginFunc         func(ctx context.Context, request domain.LoginRequest) (*domain.Session, error)
	RegisterFunc      func(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error)
	UpdateProfileFunc func(ctx context.Context, userID string, request domain.ProfileUpdateRequest) error

	// Captured values for assertions
	LastLoginRequest  *domain.LoginRequest
	LastProfileUserID string
}

func (m *MockAuthAPI) Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error) {
	m.LastLoginRequest = &request
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, request)
	}
	return &domain.Session{UserID: "u1", Email: request.Email, Role: domain.RoleCustomer}, nil
}

func (m *MockAuthAPI) Register(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, request)
	}
	return &domain.Session{UserID: "u2", Name: request.Name, Email: request.Email, Role: domain.RoleCustomer}, nil
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, userID string, request domain.ProfileUpdateRequest) error {
	m.LastProfileUserID = userID
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, request)
	}
	return nil
}

// TestLoginReconcilesGuestCart tests that a successful login pushes the guest
// cart's local-only lines and installs the session in the cart store.
func TestLoginReconcilesGuestCart(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	auth := NewAuthService(&MockAuthAPI{}, cart)
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 2)

	session, err := auth.Login(ctx, domain.LoginRequest{Email: "jade@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if session.UserID != "u1" {
		t.Errorf("expected session u1, got %+v", session)
	}

	if len(remote.AddedLines) != 1 || remote.AddedLines[0].ProductID != "A" {
		t.Errorf("expected guest line pushed on login, got %+v", remote.AddedLines)
	}
	if remote.FetchCalls != 1 {
		t.Errorf("expected one authoritative fetch after login, got %d", remote.FetchCalls)
	}
	if got := cart.Session(); got == nil || got.UserID != "u1" {
		t.Errorf("expected cart store to hold the session, got %+v", got)
	}
}

// TestLoginFailureLeavesGuestState tests that a rejected login changes nothing.
func TestLoginFailureLeavesGuestState(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	api := &MockAuthAPI{
		LoginFunc: func(ctx context.Context, request domain.LoginRequest) (*domain.Session, error) {
			return nil, errors.New("bad credentials")
		},
	}
	auth := NewAuthService(api, cart)
	ctx := context.Background()

	cart.AddItem(ctx, domain.RawProduct{ProductID: "A"}, 1)

	if _, err := auth.Login(ctx, domain.LoginRequest{Email: "x", Password: "y"}); err == nil {
		t.Fatal("expected login error")
	}
	if cart.Session() != nil {
		t.Error("expected no session after failed login")
	}
	if len(remote.AddedLines) != 0 {
		t.Error("expected no merge after failed login")
	}
}

// TestUpdateProfileRequiresSession tests the guest rejection.
func TestUpdateProfileRequiresSession(t *testing.T) {
	local := NewMockLocalState()
	cart := NewCartService(local, &MockCartAPI{})
	auth := NewAuthService(&MockAuthAPI{}, cart)

	name := "New Name"
	_, err := auth.UpdateProfile(context.Background(), domain.ProfileUpdateRequest{Name: &name})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

// TestUpdateProfileDoesNotRerunCartMerge tests that a profile edit updates
// the stored session without pushing cart lines again.
func TestUpdateProfileDoesNotRerunCartMerge(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	api := &MockAuthAPI{}
	auth := NewAuthService(api, cart)
	ctx := context.Background()

	if _, err := auth.Login(ctx, domain.LoginRequest{Email: "jade@example.com", Password: "pw"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	fetchesAfterLogin := remote.FetchCalls

	name := "Jade N."
	session, err := auth.UpdateProfile(ctx, domain.ProfileUpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("profile update failed: %v", err)
	}
	if session.Name != "Jade N." {
		t.Errorf("expected updated name, got %q", session.Name)
	}
	if api.LastProfileUserID != "u1" {
		t.Errorf("expected backend called for u1, got %q", api.LastProfileUserID)
	}
	if remote.FetchCalls != fetchesAfterLogin {
		t.Error("profile update must not trigger another cart merge")
	}
	if got := cart.Session(); got == nil || got.Name != "Jade N." {
		t.Errorf("expected cart store session updated, got %+v", got)
	}
}

// TestLogoutDelegatesToCartStore tests the logout path end to end.
func TestLogoutDelegatesToCartStore(t *testing.T) {
	local := NewMockLocalState()
	remote := &MockCartAPI{}
	cart := NewCartService(local, remote)
	auth := NewAuthService(&MockAuthAPI{}, cart)
	ctx := context.Background()

	if _, err := auth.Login(ctx, domain.LoginRequest{Email: "jade@example.com", Password: "pw"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	auth.Logout()

	if auth.Current() != nil {
		t.Error("expected guest after logout")
	}
	if len(remote.ClearCalls) != 0 {
		t.Error("logout must not clear the remote cart")
	}
}
