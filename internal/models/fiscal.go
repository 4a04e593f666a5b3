package models

import "time"

// FiscalYear is the fiscal_years row shape.
type FiscalYear struct {
	FiscalYearID string     `db:"fiscal_year_id"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	IsClosed     bool       `db:"is_closed"`
	ClosedAt     *time.Time `db:"closed_at"`
	AuditFields
}

// FiscalPeriod is the fiscal_periods row shape.
type FiscalPeriod struct {
	PeriodID     string    `db:"period_id"`
	FiscalYearID string    `db:"fiscal_year_id"`
	PeriodType   string    `db:"period_type"`
	Sequence     int       `db:"sequence"`
	Name         string    `db:"name"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Status       string    `db:"status"`
	AuditFields
}
