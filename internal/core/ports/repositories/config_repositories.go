package repositories

import (
	"context"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
)

// ConfigRepository defines persistence operations for the configuration table.
type ConfigRepository interface {
	// FindConfigs retrieves all configuration entries, ordered by name.
	FindConfigs(ctx context.Context) ([]domain.ConfigEntry, error)

	// FindConfigByName retrieves one entry by its unique name.
	FindConfigByName(ctx context.Context, name string) (*domain.ConfigEntry, error)

	// UpsertConfig inserts or updates the value for a name.
	UpsertConfig(ctx context.Context, entry domain.ConfigEntry) error
}
