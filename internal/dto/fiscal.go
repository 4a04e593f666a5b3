package dto

import (
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// CreateFiscalYearRequest is the payload for creating a fiscal year.
type CreateFiscalYearRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// GeneratePeriodsRequest selects the granularity for period generation.
type GeneratePeriodsRequest struct {
	PeriodType string `json:"periodType" binding:"required,oneof=MONTH QUARTER"`
}

// FiscalYearResponse is the display shape of a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
}

// FiscalPeriodResponse is the display shape of a fiscal period.
type FiscalPeriodResponse struct {
	PeriodID     string    `json:"periodID"`
	FiscalYearID string    `json:"fiscalYearID"`
	PeriodType   string    `json:"periodType"`
	Sequence     int       `json:"sequence"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
}

// ToFiscalYearResponse converts a domain fiscal year to its display shape.
func ToFiscalYearResponse(y *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: y.FiscalYearID,
		Name:         y.Name,
		StartDate:    y.StartDate,
		EndDate:      y.EndDate,
		IsClosed:     y.IsClosed,
		ClosedAt:     y.ClosedAt,
	}
}

// ToFiscalPeriodResponse converts a domain period to its display shape.
func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		PeriodID:     p.PeriodID,
		FiscalYearID: p.FiscalYearID,
		PeriodType:   string(p.PeriodType),
		Sequence:     p.Sequence,
		Name:         p.Name,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       string(p.Status),
	}
}

// ToFiscalPeriodResponses converts a slice of domain periods.
func ToFiscalPeriodResponses(periods []domain.FiscalPeriod) []FiscalPeriodResponse {
	responses := make([]FiscalPeriodResponse, len(periods))
	for i := range periods {
		responses[i] = ToFiscalPeriodResponse(&periods[i])
	}
	return responses
}
