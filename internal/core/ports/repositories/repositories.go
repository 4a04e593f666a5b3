package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	JournalRepo   JournalRepository
	FiscalRepo    FiscalRepository
	RecurringRepo RecurringRepository
	GSTRepo       GSTReturnRepository
	ReportingRepo ReportingRepository
	AccountRepo   AccountRepository
	TaxCodeRepo   TaxCodeRepository
	SequenceRepo  SequenceRepository
}
