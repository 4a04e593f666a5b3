package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringPattern is the recurring_patterns row shape.
type RecurringPattern struct {
	PatternID    string     `db:"pattern_id"`
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	CurrencyCode string     `db:"currency_code"`
	Interval     string     `db:"recurrence_interval"`
	NextRunDate  time.Time  `db:"next_run_date"`
	EndDate      *time.Time `db:"end_date"`
	IsActive     bool       `db:"is_active"`
	AuditFields
}

// PatternLine is the recurring_pattern_lines row shape.
type PatternLine struct {
	PatternLineID string          `db:"pattern_line_id"`
	PatternID     string          `db:"pattern_id"`
	AccountID     string          `db:"account_id"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	TaxCode       *string         `db:"tax_code"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
}
