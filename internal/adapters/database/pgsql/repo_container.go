package pgsql

import (
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		DepositRepo:  newPgxDepositRepository(dbPool),
		ConfigRepo:   newPgxConfigRepository(dbPool),
	}
}
