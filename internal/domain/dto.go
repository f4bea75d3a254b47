package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// LoginRequest struct - Domain login request DTO
	LoginRequest struct {
		Email    string
		Password string
	}

	// RegisterRequest struct - Domain registration request DTO
	RegisterRequest struct {
		Name     string
		Email    string
		Password string
	}

	// ProfileUpdateRequest struct - Fields a signed-in user may change on their
	// own account. Nil fields are left untouched.
	ProfileUpdateRequest struct {
		Name         *string
		ProfilePhoto *string
		PhoneNumber  *string
		Address      *string
		IDNumber     *string
	}

	// UserUpdateRequest struct - Admin-side update of another user's account.
	UserUpdateRequest struct {
		Name        *string
		Email       *string
		Role        *Role
		PhoneNumber *string
		Address     *string
	}

	// AccountRecord struct - A user as listed in the admin back office.
	AccountRecord struct {
		UserID      string `json:"user_id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Role        Role   `json:"role"`
		PhoneNumber string `json:"phone_number,omitempty"`
		Address     string `json:"address,omitempty"`
	}
)
