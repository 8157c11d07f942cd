package services

import (
	portsrepo "github.com/mroncal/coffee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Authz = NewAuthzService(repos.UserRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.UserRepo)
	container.Deposit = NewDepositService(repos.DepositRepo, repos.UserRepo)
	container.Ledger = NewLedgerService(repos.UserRepo, repos.PurchaseRepo, repos.DepositRepo)
	container.Config = NewConfigService(repos.ConfigRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
