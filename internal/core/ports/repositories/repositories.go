package repositories

// RepositoryProvider bundles all repository implementations so they can be
// passed around as a single dependency when wiring services.
type RepositoryProvider struct {
	UserRepo     UserRepository
	PurchaseRepo PurchaseRepository
	DepositRepo  DepositRepository
	ConfigRepo   ConfigRepository
}
