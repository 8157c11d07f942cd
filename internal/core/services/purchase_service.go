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

type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepository
	userRepo     portsrepo.UserRepository
}

// NewPurchaseService creates the purchase event-log service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository, userRepo portsrepo.UserRepository) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, userRepo: userRepo}
}

// Ensure purchaseService implements the facade
var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	// Every event references exactly one existing account.
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve purchase owner: %w", err)
	}

	if req.UnitPrice.LessThan(decimal.Zero) {
		return nil, apperrors.ErrValidation
	}

	// An omitted quantity means a single unit.
	quantity := int64(1)
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, apperrors.ErrValidation
		}
		quantity = *req.Quantity
	}

	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		UserID:     userID,
		Label:      req.Label,
		Quantity:   quantity,
		UnitPrice:  req.UnitPrice,
		CreatedAt:  time.Now(),
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("account_id", userID),
		slog.Int64("quantity", purchase.Quantity),
		slog.String("unit_price", purchase.UnitPrice.String()))
	return &purchase, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", purchaseID))
	return nil
}
