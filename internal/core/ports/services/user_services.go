package services

import (
	"context"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new local user.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a federated user from a validated
	// Google identity, registering them on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, providerUserID, email, name, firstName string) (*domain.User, error)

	// SetUserActive sets the active flag and returns the updated user.
	SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser hard-deletes a user; the user's purchases and deposits go
	// with it (database cascade).
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	// Disabled accounts fail with ErrAccountDisabled before the password is
	// compared; unknown email and wrong password both fail with
	// ErrBadCredentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
