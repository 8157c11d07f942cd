package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
)

type configService struct {
	BaseService
	configRepo portsrepo.ConfigRepository
}

// NewConfigService creates the runtime configuration service.
func NewConfigService(configRepo portsrepo.ConfigRepository) portssvc.ConfigSvcFacade {
	return &configService{configRepo: configRepo}
}

// Ensure configService implements the facade
var _ portssvc.ConfigSvcFacade = (*configService)(nil)

func (s *configService) ListConfigs(ctx context.Context) ([]domain.ConfigEntry, error) {
	entries, err := s.configRepo.FindConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return entries, nil
}

// SetConfig upserts by name. Values are opaque strings; interpreting them is
// the consumer's business.
func (s *configService) SetConfig(ctx context.Context, name, value string) (*domain.ConfigEntry, error) {
	// CreatedAt only lands on the first insert; the upsert keeps the
	// existing value on conflict.
	now := time.Now()
	entry := domain.ConfigEntry{
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.configRepo.UpsertConfig(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert config %q: %w", name, err)
	}

	stored, err := s.configRepo.FindConfigByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to reload config %q after upsert: %w", name, err)
	}

	s.LogInfo(ctx, "Config value set", slog.String("name", name))
	return stored, nil
}
