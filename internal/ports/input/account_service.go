package input

import (
	"context"

	"storefront/internal/domain"
)

// AccountService interface - Input port (use case)
// Admin back-office user management.
type AccountService interface {
	ListUsers(ctx context.Context) ([]domain.AccountRecord, error)
	UpdateUser(ctx context.Context, userID string, request domain.UserUpdateRequest) error
	DeleteUser(ctx context.Context, userID string) error
}
