package services

import (
	"context"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the aggregation core: it derives per-account views from
// the two event logs. Both operations are pure reads, recomputed on every
// request, and fail with ErrNotFound when the account does not exist.
type LedgerSvcFacade interface {
	// ComputeBalance returns credits minus debits over all of the user's
	// deposits and purchases.
	ComputeBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// TransactionHistory returns the user's purchases and deposits merged
	// into one sequence, most recent first; events with equal timestamps
	// keep their insertion order. An account with no events fails with
	// ErrNoTransactions so callers can render the distinct empty state.
	TransactionHistory(ctx context.Context, userID string) ([]domain.Transaction, error)
}
