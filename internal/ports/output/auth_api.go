package output

import (
	"context"

	"storefront/internal/domain"
)

// AuthAPI interface - Output port
// Credential verification and account creation are delegated to the backend;
// the gateway never issues tokens itself.
type AuthAPI interface {
	Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error)
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error)
	UpdateProfile(ctx context.Context, userID string, request domain.ProfileUpdateRequest) error
}

// UserAPI interface - Output port
// Admin back-office user management.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.AccountRecord, error)
	UpdateUser(ctx context.Context, userID string, request domain.UserUpdateRequest) error
	DeleteUser(ctx context.Context, userID string) error
}
