package backend

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time checks
var (
	_ output.AuthAPI = (*AuthClient)(nil)
	_ output.UserAPI = (*AuthClient)(nil)
)

// AuthClient struct - Output adapter for login, registration, profile and the
// admin user-management calls. Token issuance stays on the backend; this
// adapter only carries credentials over and session fields back.
type AuthClient struct {
	client *Client
}

// NewAuthClient func
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Login func - POST /api/login
func (a *AuthClient) Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error) {
	body := credentialsRequest{Email: request.Email, Password: request.Password}

	var record userRecord
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/login", body, &record); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if record.Email == "" {
		return nil, fmt.Errorf("%w: backend returned no user for login", domain.ErrInvalidRequest)
	}

	session := record.toSession()
	logrus.Infof("User %s logged in with role %s", session.UserID, session.Role)
	return session, nil
}

// Register func - POST /api/register
func (a *AuthClient) Register(ctx context.Context, request domain.RegisterRequest) (*domain.Session, error) {
	body := registerRequest{Name: request.Name, Email: request.Email, Password: request.Password}

	var resp registerResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/register", body, &resp); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, resp.Message)
	}
	return resp.User.toSession(), nil
}

// UpdateProfile func - POST /api/update_profile
func (a *AuthClient) UpdateProfile(ctx context.Context, userID string, request domain.ProfileUpdateRequest) error {
	body := map[string]interface{}{"user_id": userID}
	if request.Name != nil {
		body["name"] = *request.Name
	}
	if request.ProfilePhoto != nil {
		body["profile_photo"] = *request.ProfilePhoto
	}
	if request.PhoneNumber != nil {
		body["phone_number"] = *request.PhoneNumber
	}
	if request.Address != nil {
		body["address"] = *request.Address
	}
	if request.IDNumber != nil {
		body["id_number"] = *request.IDNumber
	}

	if err := a.client.doJSON(ctx, http.MethodPost, "/api/update_profile", body, nil); err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// ListUsers func - GET /api/get_users
func (a *AuthClient) ListUsers(ctx context.Context) ([]domain.AccountRecord, error) {
	var records []userRecord
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/get_users", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	accounts := make([]domain.AccountRecord, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, domain.AccountRecord{
			UserID:      record.UserID.String(),
			Name:        record.Name,
			Email:       record.Email,
			Role:        domain.Role(record.Role),
			PhoneNumber: record.PhoneNumber,
			Address:     record.Address,
		})
	}
	return accounts, nil
}

// UpdateUser func - PUT /api/update_user/{userId}
func (a *AuthClient) UpdateUser(ctx context.Context, userID string, request domain.UserUpdateRequest) error {
	body := map[string]interface{}{}
	if request.Name != nil {
		body["name"] = *request.Name
	}
	if request.Email != nil {
		body["email"] = *request.Email
	}
	if request.Role != nil {
		body["role"] = string(*request.Role)
	}
	if request.PhoneNumber != nil {
		body["phone_number"] = *request.PhoneNumber
	}
	if request.Address != nil {
		body["address"] = *request.Address
	}

	path := fmt.Sprintf("/api/update_user/%s", userID)
	if err := a.client.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser func - DELETE /api/delete_users/{userId}
func (a *AuthClient) DeleteUser(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/api/delete_users/%s", userID)
	if err := a.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// API request/response structures for the backend's auth and user resources

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    userRecord `json:"user"`
}

type userRecord struct {
	UserID       flexibleID `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	ProfilePhoto string     `json:"profile_photo"`
	PhoneNumber  string     `json:"phone_number"`
	Address      string     `json:"address"`
	IDNumber     string     `json:"id_number"`
}

func (r userRecord) toSession() *domain.Session {
	role := domain.Role(r.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	return &domain.Session{
		UserID:       r.UserID.String(),
		Name:         r.Name,
		Email:        r.Email,
		Role:         role,
		ProfilePhoto: r.ProfilePhoto,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		IDNumber:     r.IDNumber,
	}
}
