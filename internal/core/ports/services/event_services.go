package services

import (
	"context"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
)

// PurchaseSvcFacade manages the purchase event log.
type PurchaseSvcFacade interface {
	// CreatePurchase records a purchase for the given account. The id and
	// timestamp are server-assigned; quantity defaults to 1 when omitted.
	CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// DeletePurchase removes a purchase by id.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// DepositSvcFacade manages the deposit event log.
type DepositSvcFacade interface {
	// CreateDeposit records a deposit for the given account. The amount
	// must be strictly positive.
	CreateDeposit(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.Deposit, error)

	// DeleteDeposit removes a deposit by id.
	DeleteDeposit(ctx context.Context, depositID string) error
}
