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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type depositService struct {
	BaseService
	depositRepo portsrepo.DepositRepository
	userRepo    portsrepo.UserRepository
}

// NewDepositService creates the deposit event-log service.
func NewDepositService(depositRepo portsrepo.DepositRepository, userRepo portsrepo.UserRepository) portssvc.DepositSvcFacade {
	return &depositService{depositRepo: depositRepo, userRepo: userRepo}
}

// Ensure depositService implements the facade
var _ portssvc.DepositSvcFacade = (*depositService)(nil)

func (s *depositService) CreateDeposit(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.Deposit, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve deposit owner: %w", err)
	}

	// A non-positive credit would be an undocumented purchase.
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrValidation
	}

	deposit := domain.Deposit{
		DepositID: uuid.NewString(),
		UserID:    userID,
		Label:     req.Label,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("account_id", userID),
		slog.String("amount", deposit.Amount.String()))
	return &deposit, nil
}

func (s *depositService) DeleteDeposit(ctx context.Context, depositID string) error {
	if err := s.depositRepo.DeleteDeposit(ctx, depositID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	s.LogInfo(ctx, "Deposit deleted", slog.String("deposit_id", depositID))
	return nil
}
