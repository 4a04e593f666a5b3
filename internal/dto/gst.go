package dto

import (
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PrepareGSTReturnRequest selects the filing period to compute.
type PrepareGSTReturnRequest struct {
	PeriodStart time.Time `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time `json:"periodEnd" binding:"required"`
}

// SaveGSTReturnRequest is the payload for saving a draft return. The box
// amounts normally come straight from a prepare call; adjustments are the one
// manually entered figure.
type SaveGSTReturnRequest struct {
	PeriodStart   time.Time `json:"periodStart" binding:"required"`
	PeriodEnd     time.Time `json:"periodEnd" binding:"required"`
	FilingDueDate time.Time `json:"filingDueDate" binding:"required"`

	StandardRatedSupplies decimal.Decimal `json:"standardRatedSupplies"`
	ZeroRatedSupplies     decimal.Decimal `json:"zeroRatedSupplies"`
	ExemptSupplies        decimal.Decimal `json:"exemptSupplies"`
	TaxablePurchases      decimal.Decimal `json:"taxablePurchases"`
	OutputTax             decimal.Decimal `json:"outputTax"`
	InputTax              decimal.Decimal `json:"inputTax"`
	Adjustments           decimal.Decimal `json:"adjustments"`
}

// FinalizeGSTReturnRequest carries the statutory submission stamp.
type FinalizeGSTReturnRequest struct {
	SubmissionReference string    `json:"submissionReference" binding:"required"`
	SubmissionDate      time.Time `json:"submissionDate" binding:"required"`
}

// GSTReturnResponse is the display shape of a GST return. Box amounts are
// rounded to 2 decimal places here and nowhere earlier.
type GSTReturnResponse struct {
	ReturnID      string    `json:"returnID"`
	PeriodStart   time.Time `json:"periodStart"`
	PeriodEnd     time.Time `json:"periodEnd"`
	FilingDueDate time.Time `json:"filingDueDate"`

	StandardRatedSupplies decimal.Decimal `json:"standardRatedSupplies"`
	ZeroRatedSupplies     decimal.Decimal `json:"zeroRatedSupplies"`
	ExemptSupplies        decimal.Decimal `json:"exemptSupplies"`
	TotalSupplies         decimal.Decimal `json:"totalSupplies"`
	TaxablePurchases      decimal.Decimal `json:"taxablePurchases"`
	OutputTax             decimal.Decimal `json:"outputTax"`
	InputTax              decimal.Decimal `json:"inputTax"`
	Adjustments           decimal.Decimal `json:"adjustments"`
	NetPayable            decimal.Decimal `json:"netPayable"`

	Status              string     `json:"status"`
	SubmissionReference string     `json:"submissionReference,omitempty"`
	SubmissionDate      *time.Time `json:"submissionDate,omitempty"`
	SettlementEntryID   *string    `json:"settlementEntryID,omitempty"`
}

// ToGSTReturnResponse converts a domain return to its display shape.
func ToGSTReturnResponse(r *domain.GSTReturn) GSTReturnResponse {
	return GSTReturnResponse{
		ReturnID:      r.ReturnID,
		PeriodStart:   r.PeriodStart,
		PeriodEnd:     r.PeriodEnd,
		FilingDueDate: r.FilingDueDate,

		StandardRatedSupplies: r.StandardRatedSupplies.Round(2),
		ZeroRatedSupplies:     r.ZeroRatedSupplies.Round(2),
		ExemptSupplies:        r.ExemptSupplies.Round(2),
		TotalSupplies:         r.TotalSupplies.Round(2),
		TaxablePurchases:      r.TaxablePurchases.Round(2),
		OutputTax:             r.OutputTax.Round(2),
		InputTax:              r.InputTax.Round(2),
		Adjustments:           r.Adjustments.Round(2),
		NetPayable:            r.NetPayable.Round(2),

		Status:              string(r.Status),
		SubmissionReference: r.SubmissionReference,
		SubmissionDate:      r.SubmissionDate,
		SettlementEntryID:   r.SettlementEntryID,
	}
}
