package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

// FiscalCalendarSvc owns fiscal years and their periods and answers whether a
// date is postable.
type FiscalCalendarSvc interface {
	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)

	// GeneratePeriods produces the contiguous, non-overlapping period set
	// covering the year's full span. Fails if the year already has periods.
	GeneratePeriods(ctx context.Context, fiscalYearID string, periodType domain.PeriodType, userID string) ([]domain.FiscalPeriod, error)

	ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error)

	// PeriodForDate returns the period covering the date, or
	// apperrors.ErrNotFound when none does.
	PeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error)

	// ClosePeriod flips a period to Closed, gated by the no-open-drafts policy.
	ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error)

	// ReopenPeriod flips a Closed period back to Open. Fails once the owning
	// fiscal year is closed.
	ReopenPeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error)

	// CloseFiscalYear seals a year whose periods are all Closed.
	CloseFiscalYear(ctx context.Context, fiscalYearID string, userID string) (*domain.FiscalYear, error)
}
