package domain

// Role type
type Role string

const (
	// RoleCustomer const
	RoleCustomer Role = "customer"
	// RoleAdmin const
	RoleAdmin Role = "admin"
)

// Session struct - The currently authenticated principal.
// A nil *Session means a guest session: cart activity with no identity attached.
type Session struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Address      string `json:"address,omitempty"`
	IDNumber     string `json:"id_number,omitempty"`
}

// IsAdmin reports whether the session belongs to a back-office user.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
