package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceInterval is the spacing between generated entries.
type RecurrenceInterval string

const (
	IntervalWeekly    RecurrenceInterval = "WEEKLY"
	IntervalMonthly   RecurrenceInterval = "MONTHLY"
	IntervalQuarterly RecurrenceInterval = "QUARTERLY"
	IntervalAnnually  RecurrenceInterval = "ANNUALLY"
)

// Advance returns the date one interval after from. The boolean is false for
// an unknown interval so callers can surface a data error instead of looping.
func (i RecurrenceInterval) Advance(from time.Time) (time.Time, bool) {
	switch i {
	case IntervalWeekly:
		return from.AddDate(0, 0, 7), true
	case IntervalMonthly:
		return from.AddDate(0, 1, 0), true
	case IntervalQuarterly:
		return from.AddDate(0, 3, 0), true
	case IntervalAnnually:
		return from.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// RecurringPattern is a journal entry template plus a schedule rule. The
// scheduler materializes a draft entry each time NextRunDate comes due, and
// advances NextRunDate only after the draft was created successfully.
type RecurringPattern struct {
	PatternID    string             `json:"patternID"`
	Name         string             `json:"name"`
	Description  string             `json:"description"` // Used for generated entries
	CurrencyCode string             `json:"currencyCode"`
	Interval     RecurrenceInterval `json:"interval"`
	NextRunDate  time.Time          `json:"nextRunDate"`
	EndDate      *time.Time         `json:"endDate,omitempty"` // No runs after this date
	IsActive     bool               `json:"isActive"`
	Lines        []PatternLine      `json:"lines,omitempty"`
	AuditFields
}

// PatternLine is the template for one line of a generated entry.
type PatternLine struct {
	PatternLineID string          `json:"patternLineID"`
	PatternID     string          `json:"patternID"`
	AccountID     string          `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	TaxCode       *string         `json:"taxCode,omitempty"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
}

// DueOn reports whether the pattern should generate an entry as of the given date.
func (p *RecurringPattern) DueOn(asOf time.Time) bool {
	if !p.IsActive || p.NextRunDate.After(asOf) {
		return false
	}
	if p.EndDate != nil && p.NextRunDate.After(*p.EndDate) {
		return false
	}
	return true
}
