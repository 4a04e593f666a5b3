package dto

import (
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePatternLineRequest is one template line of a recurring pattern.
type CreatePatternLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxCode   *string         `json:"taxCode,omitempty"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
}

// CreatePatternRequest is the payload for creating a recurring pattern.
type CreatePatternRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode" binding:"required,len=3"`
	Interval     string                     `json:"interval" binding:"required,oneof=WEEKLY MONTHLY QUARTERLY ANNUALLY"`
	FirstRunDate time.Time                  `json:"firstRunDate" binding:"required"`
	EndDate      *time.Time                 `json:"endDate,omitempty"`
	Lines        []CreatePatternLineRequest `json:"lines"`
}

// RunRecurrenceRequest triggers a scheduler run as of the given date.
type RunRecurrenceRequest struct {
	AsOf time.Time `json:"asOf" binding:"required"`
}

// PatternRunFailure records why one due pattern could not be materialized.
type PatternRunFailure struct {
	PatternID string `json:"patternID"`
	Error     string `json:"error"`
}

// RecurrenceRunResult summarizes one scheduler run.
type RecurrenceRunResult struct {
	AsOf             time.Time           `json:"asOf"`
	GeneratedEntries []string            `json:"generatedEntries"` // Draft entry IDs
	Failures         []PatternRunFailure `json:"failures"`
}

// PatternResponse is the display shape of a recurring pattern.
type PatternResponse struct {
	PatternID    string     `json:"patternID"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CurrencyCode string     `json:"currencyCode"`
	Interval     string     `json:"interval"`
	NextRunDate  time.Time  `json:"nextRunDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsActive     bool       `json:"isActive"`
}

// ToPatternResponse converts a domain pattern to its display shape.
func ToPatternResponse(p *domain.RecurringPattern) PatternResponse {
	return PatternResponse{
		PatternID:    p.PatternID,
		Name:         p.Name,
		Description:  p.Description,
		CurrencyCode: p.CurrencyCode,
		Interval:     string(p.Interval),
		NextRunDate:  p.NextRunDate,
		EndDate:      p.EndDate,
		IsActive:     p.IsActive,
	}
}
