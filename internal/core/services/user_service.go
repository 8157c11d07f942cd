package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/mroncal/coffee_ledger_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the facade
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		FirstName:    req.FirstName,
		Email:        req.Email,
		PasswordHash: &hash,
		IsActive:     true,
		IsAdmin:      false,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Registration with already-used email", slog.String("email", req.Email))
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("new_user_id", user.UserID))
	return &user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, providerUserID, email, name, firstName string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up federated user: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Name:           name,
		FirstName:      firstName,
		Email:          email,
		PasswordHash:   nil, // federated accounts have no local credential
		IsActive:       true,
		IsAdmin:        false,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}

	s.LogInfo(ctx, "Federated user registered", slog.String("new_user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AuthenticateUser verifies an email/password pair. A disabled account is
// rejected before the password is compared. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if !user.IsActive {
		s.LogWarn(ctx, "Login attempt on disabled account", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrAccountDisabled
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrBadCredentials
	}

	return user, nil
}

func (s *userService) SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	if err := s.userRepo.SetUserActive(ctx, userID, active); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set active flag: %w", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user after active update: %w", err)
	}

	s.LogInfo(ctx, "User active flag updated",
		slog.String("target_user_id", userID),
		slog.Bool("active", active))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User deleted with cascading events", slog.String("target_user_id", userID))
	return nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
