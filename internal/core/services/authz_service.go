package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
)

// authzService is the authorization gate. It resolves the acting user from
// the token subject and enforces the active/admin requirements in one place,
// so handlers never inline role or state checks.
type authzService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewAuthzService creates the authorization gate.
func NewAuthzService(userRepo portsrepo.UserRepository) portssvc.AuthzSvcFacade {
	return &authzService{userRepo: userRepo}
}

// Ensure authzService implements the facade
var _ portssvc.AuthzSvcFacade = (*authzService)(nil)

// Authorize resolves the acting user and verifies each requirement in turn.
// The requirements are independent axes: a deactivated admin fails
// ActiveAccount but still passes AdminRole. The user row is re-read on every
// call, so a deactivation takes effect immediately even for tokens issued
// before the state change.
func (s *authzService) Authorize(ctx context.Context, userID string, requirements ...domain.AccessRequirement) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A valid token whose subject no longer resolves is treated as
			// an invalid token, not a missing resource.
			s.LogWarn(ctx, "Token subject resolves to no user")
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	for _, req := range requirements {
		switch req {
		case domain.ActiveAccount:
			if !user.IsActive {
				s.LogWarn(ctx, "Disabled account blocked")
				return nil, apperrors.ErrAccountDisabled
			}
		case domain.AdminRole:
			if !user.IsAdmin {
				s.LogWarn(ctx, "Non-admin blocked from privileged operation")
				return nil, apperrors.ErrForbidden
			}
		default:
			return nil, fmt.Errorf("unknown access requirement: %q", req)
		}
	}

	return user, nil
}
