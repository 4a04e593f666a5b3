package repositories

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// FiscalRepository defines persistence operations for fiscal years and periods.
type FiscalRepository interface {
	SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)

	// MarkYearClosed sets the closed flag and timestamp on a fiscal year.
	MarkYearClosed(ctx context.Context, fiscalYearID string, userID string, closedAt time.Time) error

	// SavePeriods inserts the full period set of a year in one batch.
	SavePeriods(ctx context.Context, periods []domain.FiscalPeriod) error

	FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error)

	// FindPeriodForDate returns the period covering the given date, or
	// apperrors.ErrNotFound when no period covers it.
	FindPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error)

	ListPeriodsByYear(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error)
	CountPeriodsByYear(ctx context.Context, fiscalYearID string) (int, error)

	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, updatedAt time.Time) error
}
