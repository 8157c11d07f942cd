package services

import (
	"context"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthzSvcFacade is the authorization gate. Every protected operation goes
// through Authorize instead of inlining role or state checks in handlers.
type AuthzSvcFacade interface {
	// Authorize resolves the acting user and verifies each requirement.
	// It fails with ErrUnauthorized when the id resolves to no user,
	// ErrAccountDisabled when ActiveAccount is demanded of a deactivated
	// user, and ErrForbidden when AdminRole is demanded of a non-admin.
	Authorize(ctx context.Context, userID string, requirements ...domain.AccessRequirement) (*domain.User, error)
}

// TokenSvcFacade issues and validates the application's tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and returns it
	// with its expiry time. Only its digest is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the user's stored digest and expiry.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token received from Google and
	// returns the payload if valid.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
