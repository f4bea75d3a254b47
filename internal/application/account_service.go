package application

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"
)

// Compile-time check
var _ input.AccountService = (*AccountService)(nil)

// AccountService struct - Application service for admin user management
type AccountService struct {
	api  output.UserAPI
	cart input.CartStore
}

// NewAccountService func
func NewAccountService(api output.UserAPI, cart input.CartStore) *AccountService {
	return &AccountService{
		api:  api,
		cart: cart,
	}
}

// ListUsers func - Use case: admin lists accounts
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.AccountRecord, error) {
	if !s.cart.Session().IsAdmin() {
		return nil, fmt.Errorf("list users: %w", domain.ErrUnauthenticated)
	}
	return s.api.ListUsers(ctx)
}

// UpdateUser func - Use case: admin edits an account
func (s *AccountService) UpdateUser(ctx context.Context, userID string, request domain.UserUpdateRequest) error {
	if !s.cart.Session().IsAdmin() {
		return fmt.Errorf("update user: %w", domain.ErrUnauthenticated)
	}
	return s.api.UpdateUser(ctx, userID, request)
}

// DeleteUser func - Use case: admin removes an account
func (s *AccountService) DeleteUser(ctx context.Context, userID string) error {
	if !s.cart.Session().IsAdmin() {
		return fmt.Errorf("delete user: %w", domain.ErrUnauthenticated)
	}
	return s.api.DeleteUser(ctx, userID)
}
