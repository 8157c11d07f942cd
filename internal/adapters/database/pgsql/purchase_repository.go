package pgsql

import (
	"context"
	"fmt"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxPurchaseRepository struct {
	db *pgxpool.Pool
}

func newPgxPurchaseRepository(db *pgxpool.Pool) *pgxPurchaseRepository {
	return &pgxPurchaseRepository{db: db}
}

// Ensure pgxPurchaseRepository implements the port
var _ portsrepo.PurchaseRepository = (*pgxPurchaseRepository)(nil)

func (r *pgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	query := `
        INSERT INTO purchases (purchase_id, user_id, label, quantity, unit_price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.UserID,
		purchase.Label,
		purchase.Quantity,
		purchase.UnitPrice,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	return nil
}

func (r *pgxPurchaseRepository) FindPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	// Insertion order is the tie-break for equal timestamps downstream,
	// so rows come back oldest first.
	query := `
        SELECT purchase_id, user_id, label, quantity, unit_price, created_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at ASC, purchase_id ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(
			&p.PurchaseID,
			&p.UserID,
			&p.Label,
			&p.Quantity,
			&p.UnitPrice,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}

	return purchases, nil
}

func (r *pgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	query := `DELETE FROM purchases WHERE purchase_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
