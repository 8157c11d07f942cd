package repositories

import (
	"context"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Implementations return apperrors.ErrNotFound for missing rows and
// apperrors.ErrDuplicate for unique-constraint violations.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by primary key.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Used by login only.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a federated user by provider + subject.
	FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// SetUserActive updates the active flag. The only user field mutable
	// after creation besides the refresh-token columns.
	SetUserActive(ctx context.Context, userID string, active bool) error

	// DeleteUser hard-deletes a user; the database cascades to the user's
	// purchases and deposits.
	DeleteUser(ctx context.Context, userID string) error

	// UpdateRefreshToken stores the refresh token digest and its expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token digest.
	ClearRefreshToken(ctx context.Context, userID string) error
}
