package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

var (
	ErrPatternInactive = fmt.Errorf("%w: recurring pattern is inactive", apperrors.ErrConflict)
	ErrInvalidInterval = fmt.Errorf("%w: unknown recurrence interval", apperrors.ErrValidation)
)

// recurringService materializes recurring patterns into draft entries through
// the posting engine. Generated drafts go through the exact same validation
// and lifecycle as manually created ones.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepository
	journalSvc    portssvc.LedgerPostingSvc
	policy        PostingPolicy
}

// NewRecurringService creates the recurrence scheduler.
func NewRecurringService(recurringRepo portsrepo.RecurringRepository, journalSvc portssvc.LedgerPostingSvc, policy PostingPolicy) portssvc.RecurrenceSvc {
	return &recurringService{
		recurringRepo: recurringRepo,
		journalSvc:    journalSvc,
		policy:        policy,
	}
}

var _ portssvc.RecurrenceSvc = (*recurringService)(nil)

// CreatePattern persists a pattern with its template lines. The template must
// balance up front so the scheduler never churns out drafts that can never post.
func (s *recurringService) CreatePattern(ctx context.Context, req dto.CreatePatternRequest, userID string) (*domain.RecurringPattern, error) {
	interval := domain.RecurrenceInterval(req.Interval)
	if _, ok := interval.Advance(req.FirstRunDate); !ok {
		return nil, fmt.Errorf("interval %q: %w", req.Interval, ErrInvalidInterval)
	}

	vErrs := &apperrors.ValidationErrors{}
	if len(req.Lines) < 2 {
		vErrs.Add("pattern must have at least two template lines")
	}
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for i, lr := range req.Lines {
		hasDebit := lr.Debit.IsPositive()
		hasCredit := lr.Credit.IsPositive()
		if hasDebit == hasCredit {
			vErrs.Add("template line %d: a line must carry exactly one nonzero side", i+1)
		}
		totalDebits = totalDebits.Add(lr.Debit)
		totalCredits = totalCredits.Add(lr.Credit)
	}
	if totalDebits.Sub(totalCredits).Abs().GreaterThan(s.policy.BalanceTolerance) {
		vErrs.Add("template is unbalanced: debits total %s, credits total %s", totalDebits.String(), totalCredits.String())
	}
	if req.EndDate != nil && req.EndDate.Before(req.FirstRunDate) {
		vErrs.Add("end date must not be before the first run date")
	}
	if vErrs.HasErrors() {
		return nil, vErrs
	}

	now := time.Now().UTC()
	pattern := domain.RecurringPattern{
		PatternID:    uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Interval:     interval,
		NextRunDate:  req.FirstRunDate,
		EndDate:      req.EndDate,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	lines := make([]domain.PatternLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.PatternLine{
			PatternLineID: uuid.NewString(),
			PatternID:     pattern.PatternID,
			AccountID:     lr.AccountID,
			Debit:         lr.Debit,
			Credit:        lr.Credit,
			TaxCode:       lr.TaxCode,
			TaxAmount:     lr.TaxAmount,
		}
	}

	if err := s.recurringRepo.SavePattern(ctx, pattern, lines); err != nil {
		s.LogError(ctx, err, "Failed to save recurring pattern", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save recurring pattern: %w", err)
	}

	pattern.Lines = lines
	s.LogInfo(ctx, "Recurring pattern created", slog.String("pattern_id", pattern.PatternID), slog.String("name", pattern.Name))
	return &pattern, nil
}

// GetPatternByID retrieves a pattern together with its template lines.
func (s *recurringService) GetPatternByID(ctx context.Context, patternID string) (*domain.RecurringPattern, error) {
	pattern, err := s.recurringRepo.FindPatternByID(ctx, patternID)
	if err != nil {
		return nil, err
	}
	lines, err := s.recurringRepo.FindPatternLines(ctx, patternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for pattern %s: %w", patternID, err)
	}
	pattern.Lines = lines
	return pattern, nil
}

// ListPatterns returns all patterns.
func (s *recurringService) ListPatterns(ctx context.Context) ([]domain.RecurringPattern, error) {
	patterns, err := s.recurringRepo.ListPatterns(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring patterns")
		return nil, fmt.Errorf("failed to retrieve recurring patterns: %w", err)
	}
	return patterns, nil
}

// DeactivatePattern stops future generation. Entries already generated are
// untouched.
func (s *recurringService) DeactivatePattern(ctx context.Context, patternID string, userID string) error {
	pattern, err := s.recurringRepo.FindPatternByID(ctx, patternID)
	if err != nil {
		return err
	}
	if !pattern.IsActive {
		return fmt.Errorf("cannot deactivate pattern %s: %w", patternID, ErrPatternInactive)
	}

	if err := s.recurringRepo.DeactivatePattern(ctx, patternID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate pattern", slog.String("pattern_id", patternID))
		return err
	}

	s.LogInfo(ctx, "Recurring pattern deactivated", slog.String("pattern_id", patternID))
	return nil
}

// Run materializes every due pattern as of asOf. A pattern overdue by several
// intervals catches up with one entry per missed occurrence. The next run date
// is only advanced after a draft was created successfully, so a failed pattern
// stays due and is retried on the next run rather than silently skipped.
func (s *recurringService) Run(ctx context.Context, asOf time.Time, userID string) (*dto.RecurrenceRunResult, error) {
	due, err := s.recurringRepo.ListDuePatterns(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due patterns")
		return nil, fmt.Errorf("failed to list due patterns: %w", err)
	}

	result := &dto.RecurrenceRunResult{
		AsOf:             asOf,
		GeneratedEntries: []string{},
		Failures:         []dto.PatternRunFailure{},
	}

	for _, pattern := range due {
		generated, err := s.runPattern(ctx, pattern, asOf, userID)
		result.GeneratedEntries = append(result.GeneratedEntries, generated...)
		if err != nil {
			s.LogWarn(ctx, "Pattern run failed",
				slog.String("pattern_id", pattern.PatternID),
				slog.String("error", err.Error()))
			result.Failures = append(result.Failures, dto.PatternRunFailure{
				PatternID: pattern.PatternID,
				Error:     err.Error(),
			})
		}
	}

	s.LogInfo(ctx, "Recurrence run complete",
		slog.String("as_of", asOf.Format("2006-01-02")),
		slog.Int("generated", len(result.GeneratedEntries)),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}

// runPattern generates one draft per due occurrence of a single pattern,
// returning the entry ids created before any failure.
func (s *recurringService) runPattern(ctx context.Context, pattern domain.RecurringPattern, asOf time.Time, userID string) ([]string, error) {
	lines, err := s.recurringRepo.FindPatternLines(ctx, pattern.PatternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for pattern %s: %w", pattern.PatternID, err)
	}

	reqLines := make([]dto.CreateEntryLineRequest, len(lines))
	for i, pl := range lines {
		reqLines[i] = dto.CreateEntryLineRequest{
			AccountID: pl.AccountID,
			Debit:     pl.Debit,
			Credit:    pl.Credit,
			TaxCode:   pl.TaxCode,
			TaxAmount: pl.TaxAmount,
		}
	}

	var generated []string
	for pattern.DueOn(asOf) {
		req := dto.CreateEntryRequest{
			Date:         pattern.NextRunDate,
			Description:  pattern.Description,
			Reference:    pattern.Name,
			CurrencyCode: pattern.CurrencyCode,
			Lines:        reqLines,
			EntryType:    string(domain.EntryRecurring),
		}

		entry, err := s.journalSvc.CreateDraftEntry(ctx, req, userID)
		if err != nil {
			return generated, err
		}
		generated = append(generated, entry.EntryID)

		next, ok := pattern.Interval.Advance(pattern.NextRunDate)
		if !ok {
			return generated, fmt.Errorf("pattern %s: %w", pattern.PatternID, ErrInvalidInterval)
		}
		stillActive := pattern.EndDate == nil || !next.After(*pattern.EndDate)

		if err := s.recurringRepo.AdvancePattern(ctx, pattern.PatternID, next, stillActive, userID, time.Now().UTC()); err != nil {
			return generated, fmt.Errorf("failed to advance pattern %s: %w", pattern.PatternID, err)
		}
		pattern.NextRunDate = next
		pattern.IsActive = stillActive
	}

	return generated, nil
}
