package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		JournalRepo:   newPgxJournalRepository(dbPool),
		FiscalRepo:    newPgxFiscalRepository(dbPool),
		RecurringRepo: newPgxRecurringRepository(dbPool),
		GSTRepo:       newPgxGSTRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		AccountRepo:   newPgxAccountRepository(dbPool),
		TaxCodeRepo:   newPgxTaxCodeRepository(dbPool),
		SequenceRepo:  newPgxSequenceRepository(dbPool),
	}
}
