package application

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure AuthService implements the input port
var _ input.AuthService = (*AuthService)(nil)

// AuthService struct - Application service for sign-in, sign-up and profile
// changes. Credential checks live on the backend; this service wires a
// successful login into the cart store's reconcile step and a logout into
// its teardown.
type AuthService struct {
	api  output.AuthAPI
	cart input.CartStore
}

// NewAuthService func
func NewAuthService(api output.AuthAPI, cart input.CartStore) *AuthService {
	return &AuthService{
		api:  api,
		cart: cart,
	}
}

// Login func - Use case: authenticate and merge the guest cart.
func (s *AuthService) Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error) {
	session, err := s.api.Login(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	// Session became present: push local-only lines, then adopt the remote cart.
	s.cart.ReconcileOnLogin(ctx, *session)
	return session, nil
}

// Register func - Use case: create an account and sign in.
func (s *AuthService) Register(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error) {
	session, err := s.api.Register(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	s.cart.ReconcileOnLogin(ctx, *session)
	return session, nil
}

// UpdateProfile func - Use case: change the signed-in user's own account.
// The updated session is re-installed in the cart store so the local mirror
// stays current.
func (s *AuthService) UpdateProfile(ctx context.Context, request domain.ProfileUpdateRequest) (*domain.Session, error) {
	session := s.cart.Session()
	if session == nil {
		return nil, fmt.Errorf("update profile: %w", domain.ErrUnauthenticated)
	}

	if err := s.api.UpdateProfile(ctx, session.UserID, request); err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	updated := *session
	if request.Name != nil {
		updated.Name = *request.Name
	}
	if request.ProfilePhoto != nil {
		updated.ProfilePhoto = *request.ProfilePhoto
	}
	if request.PhoneNumber != nil {
		updated.PhoneNumber = *request.PhoneNumber
	}
	if request.Address != nil {
		updated.Address = *request.Address
	}
	if request.IDNumber != nil {
		updated.IDNumber = *request.IDNumber
	}
	s.cart.UpdateSession(updated)
	return &updated, nil
}

// Current func
func (s *AuthService) Current() *domain.Session {
	return s.cart.Session()
}

// Logout func - Use case: end the session. Delegates to the cart store, which
// clears local state and leaves the remote cart alone.
func (s *AuthService) Logout() {
	s.cart.Logout()
}
