package services

import (
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The fiscal
// service comes first since the posting engine gates on it, and the GST and
// recurrence services route their generated entries through the posting engine.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, policy PostingPolicy, gstAccounts GSTAccountConfig) *portssvc.ServiceContainer {
	fiscalSvc := NewFiscalService(repos.FiscalRepo, repos.JournalRepo, policy)
	journalSvc := NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.TaxCodeRepo, repos.SequenceRepo, fiscalSvc, policy)
	balanceSvc := NewBalanceService(repos.ReportingRepo, repos.AccountRepo)
	reportingSvc := NewReportingService(balanceSvc, repos.AccountRepo, policy)
	recurringSvc := NewRecurringService(repos.RecurringRepo, journalSvc, policy)
	gstSvc := NewGSTService(repos.GSTRepo, repos.ReportingRepo, repos.TaxCodeRepo, repos.AccountRepo, journalSvc, gstAccounts)

	return &portssvc.ServiceContainer{
		Fiscal:    fiscalSvc,
		Journal:   journalSvc,
		Recurring: recurringSvc,
		Balance:   balanceSvc,
		Reporting: reportingSvc,
		GST:       gstSvc,
	}
}
