package repositories

import (
	"context"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
)

// PurchaseRepository defines persistence operations for the purchase event log.
// Events are never updated; only create, read-by-account and delete exist.
type PurchaseRepository interface {
	// SavePurchase inserts a new purchase.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// FindPurchasesByUser retrieves all purchases for one account,
	// oldest first.
	FindPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error)

	// DeletePurchase removes a purchase by id.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// DepositRepository defines persistence operations for the deposit event log.
type DepositRepository interface {
	// SaveDeposit inserts a new deposit.
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error

	// FindDepositsByUser retrieves all deposits for one account, oldest first.
	FindDepositsByUser(ctx context.Context, userID string) ([]domain.Deposit, error)

	// DeleteDeposit removes a deposit by id.
	DeleteDeposit(ctx context.Context, depositID string) error
}
