package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	PartyRepo       PartyRepository
	InvoiceRepo     InvoiceRepository
	TransactionRepo TransactionRepository
	ActivityRepo    ActivityRepository
	UserRepo        UserRepository
	ReportingRepo   ReportingRepository
}
