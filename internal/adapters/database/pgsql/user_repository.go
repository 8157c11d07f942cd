package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for unique-constraint breaches.
const uniqueViolation = "23505"

type pgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) *pgxUserRepository {
	return &pgxUserRepository{db: db}
}

// Ensure pgxUserRepository implements the port
var _ portsrepo.UserRepository = (*pgxUserRepository)(nil)

const userColumns = `user_id, name, first_name, email, password_hash, is_active, is_admin,
        auth_provider, provider_user_id, refresh_token_hash, refresh_token_expiry, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.FirstName,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsAdmin,
		&user.AuthProvider,
		&user.ProviderUserID,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiryTime,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

func (r *pgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.FirstName,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.IsAdmin,
		user.AuthProvider,
		user.ProviderUserID,
		user.RefreshTokenHash,
		user.RefreshTokenExpiryTime,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *pgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *pgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *pgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	return scanUser(r.db.QueryRow(ctx, query, authProvider, providerUserID))
}

func (r *pgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, nil
}

func (r *pgxUserRepository) SetUserActive(ctx context.Context, userID string, active bool) error {
	query := `
        UPDATE users
        SET is_active = $1, updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, active, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update user active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	// Purchases and deposits go with the row via ON DELETE CASCADE.
	query := `DELETE FROM users WHERE user_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, refresh_token_expiry = $2, updated_at = $3
        WHERE user_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = NULL, refresh_token_expiry = NULL, updated_at = $1
        WHERE user_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
