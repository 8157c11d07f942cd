package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxConfigRepository struct {
	db *pgxpool.Pool
}

func newPgxConfigRepository(db *pgxpool.Pool) *pgxConfigRepository {
	return &pgxConfigRepository{db: db}
}

// Ensure pgxConfigRepository implements the port
var _ portsrepo.ConfigRepository = (*pgxConfigRepository)(nil)

func (r *pgxConfigRepository) FindConfigs(ctx context.Context) ([]domain.ConfigEntry, error) {
	query := `
        SELECT name, value, created_at, updated_at
        FROM configs
        ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query configs: %w", err)
	}
	defer rows.Close()

	entries := []domain.ConfigEntry{}
	for rows.Next() {
		var e domain.ConfigEntry
		if err := rows.Scan(&e.Name, &e.Value, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		entries = append(entries, e)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating config rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *pgxConfigRepository) FindConfigByName(ctx context.Context, name string) (*domain.ConfigEntry, error) {
	query := `SELECT name, value, created_at, updated_at FROM configs WHERE name = $1;`
	var e domain.ConfigEntry
	err := r.db.QueryRow(ctx, query, name).Scan(&e.Name, &e.Value, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find config by name: %w", err)
	}
	return &e, nil
}

func (r *pgxConfigRepository) UpsertConfig(ctx context.Context, entry domain.ConfigEntry) error {
	query := `
        INSERT INTO configs (name, value, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (name) DO UPDATE SET
            value = EXCLUDED.value,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, entry.Name, entry.Value, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert config: %w", err)
	}
	return nil
}
