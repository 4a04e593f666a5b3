package domain

import "time"

// PeriodType selects the granularity used when generating periods for a year.
type PeriodType string

const (
	PeriodMonthly   PeriodType = "MONTH"
	PeriodQuarterly PeriodType = "QUARTER"
)

// PeriodStatus indicates whether entries may be posted into a period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FiscalYear is a named date span owning an ordered, contiguous set of periods.
type FiscalYear struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"` // Inclusive; EndDate > StartDate
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	AuditFields
}

// FiscalPeriod is one slice of a fiscal year. Periods of a year are contiguous,
// non-overlapping and cover the year's full span.
type FiscalPeriod struct {
	PeriodID     string       `json:"periodID"`
	FiscalYearID string       `json:"fiscalYearID"`
	PeriodType   PeriodType   `json:"periodType"`
	Sequence     int          `json:"sequence"` // 1-based position within the year
	Name         string       `json:"name"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"` // Inclusive
	Status       PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether the date falls inside the period (inclusive bounds).
// Comparison is on the calendar day, ignoring the time component.
func (p *FiscalPeriod) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}

// IsOpen reports whether the period accepts postings.
func (p *FiscalPeriod) IsOpen() bool {
	return p.Status == PeriodOpen
}
