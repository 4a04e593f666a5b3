package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotDraft        = fmt.Errorf("%w: entry is not in draft status", apperrors.ErrConflict)
	ErrEntryNotPosted       = fmt.Errorf("%w: entry is not in posted status", apperrors.ErrConflict)
	ErrEntryAlreadyReversed = fmt.Errorf("%w: entry has already been reversed", apperrors.ErrConflict)
	ErrEntryUnbalanced      = fmt.Errorf("%w: entry debits and credits do not agree", apperrors.ErrConflict)
	ErrPeriodClosed         = fmt.Errorf("%w: fiscal period is closed for posting", apperrors.ErrConflict)
	ErrNoPeriodForDate      = fmt.Errorf("%w: no fiscal period covers the entry date", apperrors.ErrNotFound)
)

// journalService is the posting engine: it validates, persists, posts and
// reverses journal entries.
type journalService struct {
	BaseService
	journalRepo  portsrepo.JournalRepository
	accountRepo  portsrepo.AccountRepository
	taxCodeRepo  portsrepo.TaxCodeRepository
	sequenceRepo portsrepo.SequenceRepository
	fiscalSvc    portssvc.FiscalCalendarSvc
	policy       PostingPolicy
}

// NewJournalService creates the posting engine.
func NewJournalService(
	journalRepo portsrepo.JournalRepository,
	accountRepo portsrepo.AccountRepository,
	taxCodeRepo portsrepo.TaxCodeRepository,
	sequenceRepo portsrepo.SequenceRepository,
	fiscalSvc portssvc.FiscalCalendarSvc,
	policy PostingPolicy,
) portssvc.LedgerPostingSvc {
	return &journalService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		taxCodeRepo:  taxCodeRepo,
		sequenceRepo: sequenceRepo,
		fiscalSvc:    fiscalSvc,
		policy:       policy,
	}
}

var _ portssvc.LedgerPostingSvc = (*journalService)(nil)

// sequenceSeries maps an entry type to the number series it draws from.
func sequenceSeries(entryType domain.EntryType) string {
	switch entryType {
	case domain.EntryRecurring:
		return "RE"
	case domain.EntrySettlement:
		return "SE"
	case domain.EntryReversal:
		return "RV"
	default:
		return "JE"
	}
}

// buildLines converts request lines into domain lines. No validation happens
// here; validateLines reports on the request shape directly.
func buildLines(entryID string, reqLines []dto.CreateEntryLineRequest, userID string, now time.Time) []domain.JournalLine {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	lines := make([]domain.JournalLine, len(reqLines))
	for i, lr := range reqLines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lr.AccountID,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			TaxCode:     lr.TaxCode,
			TaxAmount:   lr.TaxAmount,
			Dimension:   lr.Dimension,
			Notes:       lr.Notes,
			AuditFields: audit,
		}
	}
	return lines
}

// validateLines checks the request structurally and accumulates every failure
// so the caller receives the complete list in one round trip. Only lookup
// failures against the persistence layer short-circuit.
func (s *journalService) validateLines(ctx context.Context, reqLines []dto.CreateEntryLineRequest) error {
	vErrs := &apperrors.ValidationErrors{}

	if len(reqLines) == 0 {
		vErrs.Add("entry must have at least one line")
		return vErrs
	}
	if len(reqLines) < 2 {
		vErrs.Add("entry must have at least two lines")
	}

	zero := decimal.Zero
	totalDebits := zero
	totalCredits := zero
	accountIDs := make([]string, 0, len(reqLines))
	taxCodes := make([]string, 0)

	for i, lr := range reqLines {
		hasDebit := lr.Debit.GreaterThan(zero)
		hasCredit := lr.Credit.GreaterThan(zero)

		if lr.Debit.IsNegative() || lr.Credit.IsNegative() {
			vErrs.Add("line %d: amounts must not be negative", i+1)
		}
		if hasDebit && hasCredit {
			vErrs.Add("line %d: a line may carry a debit or a credit, not both", i+1)
		}
		if !hasDebit && !hasCredit {
			vErrs.Add("line %d: a line must carry exactly one nonzero side", i+1)
		}
		if lr.TaxAmount.IsNegative() {
			vErrs.Add("line %d: tax amount must not be negative", i+1)
		}
		if lr.TaxCode == nil && lr.TaxAmount.GreaterThan(zero) {
			vErrs.Add("line %d: tax amount requires a tax code", i+1)
		}

		totalDebits = totalDebits.Add(lr.Debit)
		totalCredits = totalCredits.Add(lr.Credit)
		accountIDs = append(accountIDs, lr.AccountID)
		if lr.TaxCode != nil {
			taxCodes = append(taxCodes, *lr.TaxCode)
		}
	}

	if totalDebits.Sub(totalCredits).Abs().GreaterThan(s.policy.BalanceTolerance) {
		vErrs.Add("entry is unbalanced: debits total %s, credits total %s", totalDebits.String(), totalCredits.String())
	}

	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for validation: %w", err)
	}
	for _, id := range uniqueStrings(accountIDs) {
		acc, found := accountsMap[id]
		if !found {
			vErrs.Add("account %s not found", id)
			continue
		}
		if !acc.IsActive {
			vErrs.Add("account %s (%s) is inactive", acc.Code, acc.Name)
		}
	}

	if len(taxCodes) > 0 {
		taxCodesMap, err := s.taxCodeRepo.FindTaxCodesByCodes(ctx, uniqueStrings(taxCodes))
		if err != nil {
			return fmt.Errorf("failed to fetch tax codes for validation: %w", err)
		}
		for _, code := range uniqueStrings(taxCodes) {
			tc, found := taxCodesMap[code]
			if !found {
				vErrs.Add("tax code %s not found", code)
				continue
			}
			if !tc.IsActive {
				vErrs.Add("tax code %s is inactive", code)
			}
		}
	}

	if vErrs.HasErrors() {
		return vErrs
	}
	return nil
}

// CreateDraftEntry validates the request, assigns a sequence number and
// persists the entry with Draft status.
func (s *journalService) CreateDraftEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if err := s.validateLines(ctx, req.Lines); err != nil {
		return nil, err
	}

	entryType := domain.EntryType(req.EntryType)
	if entryType == "" {
		entryType = domain.EntryGeneral
	}

	entryNumber, err := s.sequenceRepo.NextNumber(ctx, sequenceSeries(entryType))
	if err != nil {
		s.LogError(ctx, err, "Failed to obtain entry number")
		return nil, fmt.Errorf("failed to obtain entry number: %w", err)
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:      uuid.NewString(),
		EntryNumber:  entryNumber,
		EntryType:    entryType,
		EntryDate:    req.Date,
		Description:  req.Description,
		Reference:    req.Reference,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	lines := buildLines(entry.EntryID, req.Lines, creatorUserID, now)

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", slog.String("entry_number", entryNumber))
		return nil, fmt.Errorf("failed to save draft entry: %w", err)
	}

	s.LogInfo(ctx, "Draft entry created", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entryNumber))
	return &entry, nil
}

// UpdateDraftEntry replaces a Draft entry's header and lines after the same
// accumulated validation as creation.
func (s *journalService) UpdateDraftEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsDraft() {
		return nil, fmt.Errorf("cannot update entry %s: %w", entryID, ErrEntryNotDraft)
	}

	if err := s.validateLines(ctx, req.Lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.EntryDate = req.Date
	entry.Description = req.Description
	entry.Reference = req.Reference
	entry.CurrencyCode = req.CurrencyCode
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	lines := buildLines(entry.EntryID, req.Lines, userID, now)

	if err := s.journalRepo.UpdateDraftEntry(ctx, *entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to update draft entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteDraftEntry removes a Draft entry together with its lines.
func (s *journalService) DeleteDraftEntry(ctx context.Context, entryID string, userID string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if !entry.IsDraft() {
		return fmt.Errorf("cannot delete entry %s: %w", entryID, ErrEntryNotDraft)
	}

	if err := s.journalRepo.DeleteDraftEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete draft entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Draft entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", userID))
	return nil
}

// checkPostable verifies the period-state precondition for a posting date.
func (s *journalService) checkPostable(ctx context.Context, date time.Time) error {
	period, err := s.fiscalSvc.PeriodForDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrNoPeriodForDate
		}
		return fmt.Errorf("failed to resolve fiscal period: %w", err)
	}
	if !period.IsOpen() {
		return ErrPeriodClosed
	}
	return nil
}

// PostEntry transitions a Draft entry to Posted. Unlike draft validation the
// preconditions here are checked fail-fast: the first violated one is the error.
func (s *journalService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsDraft() {
		return nil, fmt.Errorf("cannot post entry %s: %w", entryID, ErrEntryNotDraft)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}
	if !accounting.IsBalanced(lines, s.policy.BalanceTolerance) {
		return nil, fmt.Errorf("cannot post entry %s: %w", entryID, ErrEntryUnbalanced)
	}

	if err := s.checkPostable(ctx, entry.EntryDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	// The repository enforces the Draft guard in SQL, so a concurrent post of
	// the same entry loses with ErrConflict here.
	if err := s.journalRepo.MarkEntryPosted(ctx, entryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark entry posted", slog.String("entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.PostedBy = userID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// ReverseEntry creates and posts a new entry with every line's sides swapped,
// dated at reversalDate, and marks the original Reversed. The reversal goes
// through the same period gate as any posting.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, reversalDate time.Time, userID string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status == domain.Reversed || original.ReversalEntryID != nil {
		return nil, fmt.Errorf("cannot reverse entry %s: %w", entryID, ErrEntryAlreadyReversed)
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("cannot reverse entry %s: %w", entryID, ErrEntryNotPosted)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}

	if err := s.checkPostable(ctx, reversalDate); err != nil {
		return nil, err
	}

	entryNumber, err := s.sequenceRepo.NextNumber(ctx, sequenceSeries(domain.EntryReversal))
	if err != nil {
		return nil, fmt.Errorf("failed to obtain entry number: %w", err)
	}

	now := time.Now().UTC()
	reversal := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryNumber:     entryNumber,
		EntryType:       domain.EntryReversal,
		EntryDate:       reversalDate,
		Description:     fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, original.Description),
		Reference:       original.Reference,
		CurrencyCode:    original.CurrencyCode,
		Status:          domain.Posted,
		ReversedEntryID: &original.EntryID,
		PostedAt:        &now,
		PostedBy:        userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	reversalLines := make([]domain.JournalLine, len(originalLines))
	for i, ol := range originalLines {
		reversalLines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   reversal.EntryID,
			AccountID: ol.AccountID,
			Debit:     ol.Credit, // Sides swapped
			Credit:    ol.Debit,
			TaxCode:   ol.TaxCode,
			TaxAmount: ol.TaxAmount,
			Dimension: ol.Dimension,
			Notes:     ol.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.journalRepo.SaveReversal(ctx, reversal, reversalLines, original.EntryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to save reversal", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	s.LogInfo(ctx, "Entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return &reversal, nil
}

// GetEntryByID retrieves an entry together with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		if params.IncludeLines {
			lines, err := s.journalRepo.FindLinesByEntryID(ctx, entries[i].EntryID)
			if err != nil {
				return nil, fmt.Errorf("failed to load lines for entry %s: %w", entries[i].EntryID, err)
			}
			entries[i].Lines = lines
		}
		responses[i] = dto.ToEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
