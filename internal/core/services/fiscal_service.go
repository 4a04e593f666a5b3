package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

var (
	ErrPeriodsAlreadyExist = fmt.Errorf("%w: fiscal year already has periods generated", apperrors.ErrConflict)
	ErrPeriodHasDrafts     = fmt.Errorf("%w: period has draft entries dated inside it", apperrors.ErrConflict)
	ErrYearClosed          = fmt.Errorf("%w: fiscal year is closed", apperrors.ErrConflict)
	ErrYearAlreadyClosed   = fmt.Errorf("%w: fiscal year is already closed", apperrors.ErrConflict)
	ErrPeriodsStillOpen    = fmt.Errorf("%w: fiscal year has periods that are not closed", apperrors.ErrConflict)
	ErrPeriodAlreadyClosed = fmt.Errorf("%w: period is already closed", apperrors.ErrConflict)
	ErrPeriodAlreadyOpen   = fmt.Errorf("%w: period is already open", apperrors.ErrConflict)
	ErrInvalidYearSpan     = fmt.Errorf("%w: fiscal year end date must be after start date", apperrors.ErrValidation)
)

// fiscalService owns fiscal years and periods and enforces the locking rules
// the posting engine consults.
type fiscalService struct {
	BaseService
	fiscalRepo  portsrepo.FiscalRepository
	journalRepo portsrepo.JournalRepository
	policy      PostingPolicy
}

// NewFiscalService creates the fiscal calendar service. It reads journal data
// directly for the close-time draft check rather than going through the
// posting service, which itself depends on this one.
func NewFiscalService(fiscalRepo portsrepo.FiscalRepository, journalRepo portsrepo.JournalRepository, policy PostingPolicy) portssvc.FiscalCalendarSvc {
	return &fiscalService{
		fiscalRepo:  fiscalRepo,
		journalRepo: journalRepo,
		policy:      policy,
	}
}

var _ portssvc.FiscalCalendarSvc = (*fiscalService)(nil)

// CreateFiscalYear records a new fiscal year with no periods yet.
func (s *fiscalService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidYearSpan
	}

	now := time.Now().UTC()
	year := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsClosed:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fiscalRepo.SaveFiscalYear(ctx, year); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal year", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}

	s.LogInfo(ctx, "Fiscal year created", slog.String("fiscal_year_id", year.FiscalYearID), slog.String("name", year.Name))
	return &year, nil
}

// ListFiscalYears returns all fiscal years.
func (s *fiscalService) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	years, err := s.fiscalRepo.ListFiscalYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years")
		return nil, fmt.Errorf("failed to retrieve fiscal years: %w", err)
	}
	return years, nil
}

// GeneratePeriods carves the year into the contiguous period set of the
// requested granularity. Generation is all-or-nothing and happens once per
// year.
func (s *fiscalService) GeneratePeriods(ctx context.Context, fiscalYearID string, periodType domain.PeriodType, userID string) ([]domain.FiscalPeriod, error) {
	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if year.IsClosed {
		return nil, fmt.Errorf("cannot generate periods for year %s: %w", fiscalYearID, ErrYearClosed)
	}

	existing, err := s.fiscalRepo.CountPeriodsByYear(ctx, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to count periods: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("cannot generate periods for year %s: %w", fiscalYearID, ErrPeriodsAlreadyExist)
	}

	months := 1
	if periodType == domain.PeriodQuarterly {
		months = 3
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	var periods []domain.FiscalPeriod
	start := year.StartDate
	for seq := 1; !start.After(year.EndDate); seq++ {
		end := start.AddDate(0, months, 0).AddDate(0, 0, -1)
		if end.After(year.EndDate) {
			end = year.EndDate
		}
		periods = append(periods, domain.FiscalPeriod{
			PeriodID:     uuid.NewString(),
			FiscalYearID: fiscalYearID,
			PeriodType:   periodType,
			Sequence:     seq,
			Name:         periodName(year.Name, periodType, seq, start),
			StartDate:    start,
			EndDate:      end,
			Status:       domain.PeriodOpen,
			AuditFields:  audit,
		})
		start = end.AddDate(0, 0, 1)
	}

	if err := s.fiscalRepo.SavePeriods(ctx, periods); err != nil {
		s.LogError(ctx, err, "Failed to save periods", slog.String("fiscal_year_id", fiscalYearID))
		return nil, fmt.Errorf("failed to save periods: %w", err)
	}

	s.LogInfo(ctx, "Periods generated",
		slog.String("fiscal_year_id", fiscalYearID),
		slog.String("period_type", string(periodType)),
		slog.Int("count", len(periods)))
	return periods, nil
}

// periodName labels a period for display, e.g. "FY2026 M03 (Mar 2026)".
func periodName(yearName string, periodType domain.PeriodType, seq int, start time.Time) string {
	if periodType == domain.PeriodQuarterly {
		return fmt.Sprintf("%s Q%d", yearName, seq)
	}
	return fmt.Sprintf("%s M%02d (%s)", yearName, seq, start.Format("Jan 2006"))
}

// ListPeriods returns the periods of a year in sequence order.
func (s *fiscalService) ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	if _, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID); err != nil {
		return nil, err
	}
	periods, err := s.fiscalRepo.ListPeriodsByYear(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods", slog.String("fiscal_year_id", fiscalYearID))
		return nil, fmt.Errorf("failed to retrieve periods: %w", err)
	}
	return periods, nil
}

// PeriodForDate resolves the period covering a date.
func (s *fiscalService) PeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	return s.fiscalRepo.FindPeriodForDate(ctx, date)
}

// ClosePeriod flips an Open period to Closed. Unless the policy allows it,
// closing refuses while Draft entries are still dated inside the period.
func (s *fiscalService) ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodClosed {
		return nil, fmt.Errorf("cannot close period %s: %w", periodID, ErrPeriodAlreadyClosed)
	}

	if !s.policy.AllowCloseWithDrafts {
		draftCount, err := s.journalRepo.CountDraftEntriesInRange(ctx, period.StartDate, period.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to count draft entries: %w", err)
		}
		if draftCount > 0 {
			s.LogWarn(ctx, "Close refused over draft entries",
				slog.String("period_id", periodID),
				slog.Int("draft_count", draftCount))
			return nil, fmt.Errorf("cannot close period %s with %d draft entries: %w", periodID, draftCount, ErrPeriodHasDrafts)
		}
	}

	now := time.Now().UTC()
	if err := s.fiscalRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodClosed, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to close period", slog.String("period_id", periodID))
		return nil, err
	}

	period.Status = domain.PeriodClosed
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID), slog.String("name", period.Name))
	return period, nil
}

// ReopenPeriod flips a Closed period back to Open while its year is still open.
func (s *fiscalService) ReopenPeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodOpen {
		return nil, fmt.Errorf("cannot reopen period %s: %w", periodID, ErrPeriodAlreadyOpen)
	}

	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, period.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if year.IsClosed {
		return nil, fmt.Errorf("cannot reopen period %s: %w", periodID, ErrYearClosed)
	}

	now := time.Now().UTC()
	if err := s.fiscalRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodOpen, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to reopen period", slog.String("period_id", periodID))
		return nil, err
	}

	period.Status = domain.PeriodOpen
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID

	s.LogInfo(ctx, "Period reopened", slog.String("period_id", periodID), slog.String("name", period.Name))
	return period, nil
}

// CloseFiscalYear seals a year whose periods are all Closed. A closed year
// cannot have periods reopened, which makes the close permanent.
func (s *fiscalService) CloseFiscalYear(ctx context.Context, fiscalYearID string, userID string) (*domain.FiscalYear, error) {
	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if year.IsClosed {
		return nil, fmt.Errorf("cannot close year %s: %w", fiscalYearID, ErrYearAlreadyClosed)
	}

	periods, err := s.fiscalRepo.ListPeriodsByYear(ctx, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve periods: %w", err)
	}
	for _, p := range periods {
		if p.Status != domain.PeriodClosed {
			return nil, fmt.Errorf("cannot close year %s while period %s is open: %w", fiscalYearID, p.Name, ErrPeriodsStillOpen)
		}
	}

	now := time.Now().UTC()
	if err := s.fiscalRepo.MarkYearClosed(ctx, fiscalYearID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	year.IsClosed = true
	year.ClosedAt = &now
	year.LastUpdatedAt = now
	year.LastUpdatedBy = userID

	s.LogInfo(ctx, "Fiscal year closed", slog.String("fiscal_year_id", fiscalYearID), slog.String("name", year.Name))
	return year, nil
}
