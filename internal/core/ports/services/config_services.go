package services

import (
	"context"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
)

// ConfigSvcFacade manages the global name/value configuration table.
type ConfigSvcFacade interface {
	// ListConfigs returns all configuration entries.
	ListConfigs(ctx context.Context) ([]domain.ConfigEntry, error)

	// SetConfig inserts or updates a configuration value and returns the
	// resulting entry.
	SetConfig(ctx context.Context, name, value string) (*domain.ConfigEntry, error)
}
