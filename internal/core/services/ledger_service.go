package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ledgerService derives balance and transaction history from the two event
// logs. Both operations are pure reads and recompute from scratch on every
// call; nothing is cached between requests.
type ledgerService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	purchaseRepo portsrepo.PurchaseRepository
	depositRepo  portsrepo.DepositRepository
}

// NewLedgerService creates the ledger aggregator.
func NewLedgerService(userRepo portsrepo.UserRepository, purchaseRepo portsrepo.PurchaseRepository, depositRepo portsrepo.DepositRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		depositRepo:  depositRepo,
	}
}

// Ensure ledgerService implements the facade
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// fetchEvents loads both event logs for one account. The two reads have no
// ordering dependency so they run concurrently; either failure aborts the
// whole computation (no partial results). There is no snapshot isolation
// across the two reads, which is an accepted relaxation for this workload.
func (s *ledgerService) fetchEvents(ctx context.Context, userID string) ([]domain.Purchase, []domain.Deposit, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, nil, fmt.Errorf("failed to resolve account %s: %w", userID, err)
	}

	var (
		purchases []domain.Purchase
		deposits  []domain.Deposit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = s.purchaseRepo.FindPurchasesByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		deposits, err = s.depositRepo.FindDepositsByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to read event logs: %w", err)
	}
	return purchases, deposits, nil
}

// ComputeBalance returns credits minus debits for one account.
func (s *ledgerService) ComputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	purchases, deposits, err := s.fetchEvents(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	balance := decimal.Zero
	for _, d := range deposits {
		balance = balance.Add(d.Amount)
	}
	for _, p := range purchases {
		balance = balance.Sub(p.Total())
	}

	s.LogInfo(ctx, "Balance computed",
		slog.String("account_id", userID),
		slog.Int("purchases", len(purchases)),
		slog.Int("deposits", len(deposits)),
		slog.String("balance", balance.String()))
	return balance, nil
}

// TransactionHistory merges both event logs into one sequence, most recent
// first. Each repository returns its events oldest first, so a stable sort
// on the real timestamps keeps insertion order for equal timestamps.
func (s *ledgerService) TransactionHistory(ctx context.Context, userID string) ([]domain.Transaction, error) {
	purchases, deposits, err := s.fetchEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(purchases) == 0 && len(deposits) == 0 {
		return nil, apperrors.ErrNoTransactions
	}

	history := make([]domain.Transaction, 0, len(purchases)+len(deposits))
	for _, p := range purchases {
		history = append(history, domain.NewPurchaseTransaction(p))
	}
	for _, d := range deposits {
		history = append(history, domain.NewDepositTransaction(d))
	}

	// Descending by creation time. time.Time.After is a true chronological
	// comparison; subtracting epoch values can overflow and misorders ties.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})

	s.LogInfo(ctx, "Transaction history assembled",
		slog.String("account_id", userID),
		slog.Int("entries", len(history)))
	return history, nil
}
