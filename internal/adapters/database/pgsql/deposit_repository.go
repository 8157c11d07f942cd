package pgsql

import (
	"context"
	"fmt"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxDepositRepository struct {
	db *pgxpool.Pool
}

func newPgxDepositRepository(db *pgxpool.Pool) *pgxDepositRepository {
	return &pgxDepositRepository{db: db}
}

// Ensure pgxDepositRepository implements the port
var _ portsrepo.DepositRepository = (*pgxDepositRepository)(nil)

func (r *pgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	query := `
        INSERT INTO deposits (deposit_id, user_id, label, amount, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		deposit.DepositID,
		deposit.UserID,
		deposit.Label,
		deposit.Amount,
		deposit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit: %w", err)
	}
	return nil
}

func (r *pgxDepositRepository) FindDepositsByUser(ctx context.Context, userID string) ([]domain.Deposit, error) {
	query := `
        SELECT deposit_id, user_id, label, amount, created_at
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at ASC, deposit_id ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer rows.Close()

	deposits := []domain.Deposit{}
	for rows.Next() {
		var d domain.Deposit
		err := rows.Scan(
			&d.DepositID,
			&d.UserID,
			&d.Label,
			&d.Amount,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, d)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating deposit rows: %w", rows.Err())
	}

	return deposits, nil
}

func (r *pgxDepositRepository) DeleteDeposit(ctx context.Context, depositID string) error {
	query := `DELETE FROM deposits WHERE deposit_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, depositID)
	if err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
