package input

import (
	"context"

	"storefront/internal/domain"
)

// AuthService interface - Input port (use case)
// Sign-in, sign-up and profile changes for the current session.
type AuthService interface {
	Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error)
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error)
	UpdateProfile(ctx context.Context, request domain.ProfileUpdateRequest) (*domain.Session, error)
	Current() *domain.Session
	Logout()
}
