package domain

import "time"

// AuthProvider identifies how a user authenticates with the application.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a registered account in the domain.
// Name and FirstName are set at registration and never updated afterwards.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	FirstName    string       `json:"firstName"`
	Email        string       `json:"email"`
	PasswordHash *string      `json:"-"` // nil for federated sign-ins
	IsActive     bool         `json:"isActive"`
	IsAdmin      bool         `json:"isAdmin"`
	AuthProvider AuthProvider `json:"authProvider"`
	// ProviderUserID is the subject reported by the external provider, nil for local users.
	ProviderUserID *string `json:"-"`

	// Refresh token state. Only the SHA-256 digest of the token is stored.
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
