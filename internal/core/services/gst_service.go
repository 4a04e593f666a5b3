package services

import (
	"context"
	"errors"
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
	ErrReturnNotDraft         = fmt.Errorf("%w: GST return is not in draft status", apperrors.ErrConflict)
	ErrReturnAlreadyFinalized = fmt.Errorf("%w: GST return has already been finalized", apperrors.ErrConflict)
	ErrUnknownTaxCode         = fmt.Errorf("%w: posted line carries an unknown tax code", apperrors.ErrInternal)
)

// GSTAccountConfig names the control accounts the settlement entry moves the
// net GST position between.
type GSTAccountConfig struct {
	// ControlAccountCode is the GST control (liability) account holding the
	// accumulated output less input tax.
	ControlAccountCode string
	// ClearingAccountCode is the account the payable or refundable amount is
	// parked in until the cash movement with the tax authority.
	ClearingAccountCode string
	// CurrencyCode is the currency the settlement entry is booked in.
	CurrencyCode string
}

// gstService computes GST F5 returns from posted tax lines and manages their
// draft/finalize lifecycle, settling through the posting engine.
type gstService struct {
	BaseService
	gstRepo       portsrepo.GSTReturnRepository
	reportingRepo portsrepo.ReportingRepository
	taxCodeRepo   portsrepo.TaxCodeRepository
	accountRepo   portsrepo.AccountRepository
	journalSvc    portssvc.LedgerPostingSvc
	accounts      GSTAccountConfig
}

// NewGSTService creates the GST return service.
func NewGSTService(
	gstRepo portsrepo.GSTReturnRepository,
	reportingRepo portsrepo.ReportingRepository,
	taxCodeRepo portsrepo.TaxCodeRepository,
	accountRepo portsrepo.AccountRepository,
	journalSvc portssvc.LedgerPostingSvc,
	accounts GSTAccountConfig,
) portssvc.GSTSvc {
	return &gstService{
		gstRepo:       gstRepo,
		reportingRepo: reportingRepo,
		taxCodeRepo:   taxCodeRepo,
		accountRepo:   accountRepo,
		journalSvc:    journalSvc,
		accounts:      accounts,
	}
}

var _ portssvc.GSTSvc = (*gstService)(nil)

// filingDueDate is one month after the period end.
func filingDueDate(periodEnd time.Time) time.Time {
	return periodEnd.AddDate(0, 1, 0)
}

// PrepareReturn classifies every Posted tax line in [from, to] into the F5
// boxes. Base amounts are taken net of sign so a reversal cancels its original
// cleanly: supplies count credit minus debit, purchases debit minus credit.
func (s *gstService) PrepareReturn(ctx context.Context, from, to time.Time, userID string) (*domain.GSTReturn, error) {
	taxLines, err := s.reportingRepo.GetPostedTaxLines(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted tax lines")
		return nil, fmt.Errorf("failed to load posted tax lines: %w", err)
	}

	codes := make([]string, 0, len(taxLines))
	for _, tl := range taxLines {
		codes = append(codes, tl.TaxCode)
	}
	taxCodes, err := s.taxCodeRepo.FindTaxCodesByCodes(ctx, uniqueStrings(codes))
	if err != nil {
		return nil, fmt.Errorf("failed to load tax codes: %w", err)
	}

	now := time.Now().UTC()
	ret := &domain.GSTReturn{
		ReturnID:      uuid.NewString(),
		PeriodStart:   from,
		PeriodEnd:     to,
		FilingDueDate: filingDueDate(to),
		Status:        domain.ReturnDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	ret.StandardRatedSupplies = decimal.Zero
	ret.ZeroRatedSupplies = decimal.Zero
	ret.ExemptSupplies = decimal.Zero
	ret.TaxablePurchases = decimal.Zero
	ret.OutputTax = decimal.Zero
	ret.InputTax = decimal.Zero
	ret.Adjustments = decimal.Zero

	for _, tl := range taxLines {
		tc, found := taxCodes[tl.TaxCode]
		if !found {
			return nil, fmt.Errorf("tax code %s on entry %s: %w", tl.TaxCode, tl.EntryID, ErrUnknownTaxCode)
		}

		switch tc.BoxMapping {
		case domain.BoxStandardRatedSupply:
			base := tl.Credit.Sub(tl.Debit)
			ret.StandardRatedSupplies = ret.StandardRatedSupplies.Add(base)
			if tl.Credit.GreaterThan(tl.Debit) {
				ret.OutputTax = ret.OutputTax.Add(tl.TaxAmount)
			} else {
				ret.OutputTax = ret.OutputTax.Sub(tl.TaxAmount)
			}
		case domain.BoxZeroRatedSupply:
			ret.ZeroRatedSupplies = ret.ZeroRatedSupplies.Add(tl.Credit.Sub(tl.Debit))
		case domain.BoxExemptSupply:
			ret.ExemptSupplies = ret.ExemptSupplies.Add(tl.Credit.Sub(tl.Debit))
		case domain.BoxTaxablePurchase:
			base := tl.Debit.Sub(tl.Credit)
			ret.TaxablePurchases = ret.TaxablePurchases.Add(base)
			if tl.Debit.GreaterThan(tl.Credit) {
				ret.InputTax = ret.InputTax.Add(tl.TaxAmount)
			} else {
				ret.InputTax = ret.InputTax.Sub(tl.TaxAmount)
			}
		default:
			return nil, fmt.Errorf("tax code %s has unknown box mapping %s: %w", tc.Code, tc.BoxMapping, ErrUnknownTaxCode)
		}
	}

	ret.TotalSupplies = ret.StandardRatedSupplies.Add(ret.ZeroRatedSupplies).Add(ret.ExemptSupplies)
	ret.NetPayable = ret.OutputTax.Sub(ret.InputTax).Add(ret.Adjustments)

	s.LogInfo(ctx, "GST return prepared",
		slog.String("period_start", from.Format("2006-01-02")),
		slog.String("period_end", to.Format("2006-01-02")),
		slog.String("net_payable", ret.NetPayable.String()))
	return ret, nil
}

// SaveDraftReturn upserts the return for its period. A repeated save of the
// same period keeps the original return id.
func (s *gstService) SaveDraftReturn(ctx context.Context, req dto.SaveGSTReturnRequest, userID string) (*domain.GSTReturn, error) {
	now := time.Now().UTC()

	existing, err := s.gstRepo.FindReturnByPeriod(ctx, req.PeriodStart, req.PeriodEnd)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up return for period: %w", err)
	}

	ret := domain.GSTReturn{
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		FilingDueDate: req.FilingDueDate,

		StandardRatedSupplies: req.StandardRatedSupplies,
		ZeroRatedSupplies:     req.ZeroRatedSupplies,
		ExemptSupplies:        req.ExemptSupplies,
		TotalSupplies:         req.StandardRatedSupplies.Add(req.ZeroRatedSupplies).Add(req.ExemptSupplies),
		TaxablePurchases:      req.TaxablePurchases,
		OutputTax:             req.OutputTax,
		InputTax:              req.InputTax,
		Adjustments:           req.Adjustments,
		NetPayable:            req.OutputTax.Sub(req.InputTax).Add(req.Adjustments),

		Status: domain.ReturnDraft,
	}

	if existing != nil {
		if !existing.IsDraft() {
			return nil, fmt.Errorf("cannot save return for period ending %s: %w", req.PeriodEnd.Format("2006-01-02"), ErrReturnAlreadyFinalized)
		}
		ret.ReturnID = existing.ReturnID
		ret.AuditFields = existing.AuditFields
		ret.LastUpdatedAt = now
		ret.LastUpdatedBy = userID
		if err := s.gstRepo.UpdateDraftReturn(ctx, ret); err != nil {
			s.LogError(ctx, err, "Failed to update draft return", slog.String("return_id", ret.ReturnID))
			return nil, err
		}
	} else {
		ret.ReturnID = uuid.NewString()
		ret.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		if err := s.gstRepo.SaveReturn(ctx, ret); err != nil {
			s.LogError(ctx, err, "Failed to save draft return")
			return nil, fmt.Errorf("failed to save draft return: %w", err)
		}
	}

	s.LogInfo(ctx, "Draft GST return saved", slog.String("return_id", ret.ReturnID))
	return &ret, nil
}

// settlementRequest builds the entry moving the net GST position out of the
// control account into the clearing account. A payable nets the control
// account to zero with a debit; a refund runs the other way.
func (s *gstService) settlementRequest(ctx context.Context, ret *domain.GSTReturn, submissionDate time.Time) (*dto.CreateEntryRequest, error) {
	control, err := s.accountRepo.FindAccountByCode(ctx, s.accounts.ControlAccountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve GST control account %s: %w", s.accounts.ControlAccountCode, err)
	}
	clearing, err := s.accountRepo.FindAccountByCode(ctx, s.accounts.ClearingAccountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve GST clearing account %s: %w", s.accounts.ClearingAccountCode, err)
	}

	amount := ret.NetPayable.Abs()
	var lines []dto.CreateEntryLineRequest
	if ret.NetPayable.IsPositive() {
		lines = []dto.CreateEntryLineRequest{
			{AccountID: control.AccountID, Debit: amount},
			{AccountID: clearing.AccountID, Credit: amount},
		}
	} else {
		lines = []dto.CreateEntryLineRequest{
			{AccountID: clearing.AccountID, Debit: amount},
			{AccountID: control.AccountID, Credit: amount},
		}
	}

	return &dto.CreateEntryRequest{
		Date:         submissionDate,
		Description:  fmt.Sprintf("GST settlement for period %s to %s", ret.PeriodStart.Format("2006-01-02"), ret.PeriodEnd.Format("2006-01-02")),
		Reference:    ret.ReturnID,
		CurrencyCode: s.accounts.CurrencyCode,
		Lines:        lines,
		EntryType:    string(domain.EntrySettlement),
	}, nil
}

// FinalizeReturn seals a Draft return. When the net payable is nonzero a
// settlement entry is created and posted through the posting engine first, so
// the usual period gate applies to the submission date.
func (s *gstService) FinalizeReturn(ctx context.Context, returnID string, submissionRef string, submissionDate time.Time, userID string) (*domain.GSTReturn, error) {
	ret, err := s.gstRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if !ret.IsDraft() {
		return nil, fmt.Errorf("cannot finalize return %s: %w", returnID, ErrReturnAlreadyFinalized)
	}

	var settlementEntryID string
	if !ret.NetPayable.IsZero() {
		req, err := s.settlementRequest(ctx, ret, submissionDate)
		if err != nil {
			return nil, err
		}
		draft, err := s.journalSvc.CreateDraftEntry(ctx, *req, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to create settlement entry: %w", err)
		}
		posted, err := s.journalSvc.PostEntry(ctx, draft.EntryID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to post settlement entry: %w", err)
		}
		settlementEntryID = posted.EntryID
	}

	now := time.Now().UTC()
	// The repository enforces the Draft guard in SQL, so a concurrent finalize
	// of the same return loses with ErrConflict here.
	if err := s.gstRepo.MarkReturnSubmitted(ctx, returnID, submissionRef, submissionDate, settlementEntryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark return submitted", slog.String("return_id", returnID))
		return nil, err
	}

	ret.Status = domain.ReturnSubmitted
	ret.SubmissionReference = submissionRef
	ret.SubmissionDate = &submissionDate
	if settlementEntryID != "" {
		ret.SettlementEntryID = &settlementEntryID
	}
	ret.LastUpdatedAt = now
	ret.LastUpdatedBy = userID

	s.LogInfo(ctx, "GST return finalized",
		slog.String("return_id", returnID),
		slog.String("submission_ref", submissionRef),
		slog.String("settlement_entry_id", settlementEntryID))
	return ret, nil
}

// GetReturnByID retrieves a single GST return.
func (s *gstService) GetReturnByID(ctx context.Context, returnID string) (*domain.GSTReturn, error) {
	return s.gstRepo.FindReturnByID(ctx, returnID)
}

// ListReturns retrieves all GST returns, newest period first.
func (s *gstService) ListReturns(ctx context.Context) ([]domain.GSTReturn, error) {
	returns, err := s.gstRepo.ListReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GST returns")
		return nil, fmt.Errorf("failed to retrieve GST returns: %w", err)
	}
	return returns, nil
}
