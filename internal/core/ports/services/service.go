package services

// ServiceContainer bundles every service interface for handler injection.
type ServiceContainer struct {
	Fiscal    FiscalCalendarSvc
	Journal   LedgerPostingSvc
	Recurring RecurrenceSvc
	Balance   BalanceSvc
	Reporting ReportingSvc
	GST       GSTSvc
}
