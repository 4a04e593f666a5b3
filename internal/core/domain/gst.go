package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTReturnStatus indicates the lifecycle state of a GST return.
type GSTReturnStatus string

const (
	ReturnDraft     GSTReturnStatus = "DRAFT"
	ReturnSubmitted GSTReturnStatus = "SUBMITTED"
)

// GSTReturn holds the nine statutory F5 box amounts for a filing period.
// A return is editable while Draft; finalizing is a one-way transition that
// links the settlement journal entry.
type GSTReturn struct {
	ReturnID      string    `json:"returnID"`
	PeriodStart   time.Time `json:"periodStart"`
	PeriodEnd     time.Time `json:"periodEnd"` // Inclusive
	FilingDueDate time.Time `json:"filingDueDate"`

	// Box 1-4: supplies. TotalSupplies = standard + zero + exempt.
	StandardRatedSupplies decimal.Decimal `json:"standardRatedSupplies"`
	ZeroRatedSupplies     decimal.Decimal `json:"zeroRatedSupplies"`
	ExemptSupplies        decimal.Decimal `json:"exemptSupplies"`
	TotalSupplies         decimal.Decimal `json:"totalSupplies"`
	// Box 5: purchases.
	TaxablePurchases decimal.Decimal `json:"taxablePurchases"`
	// Box 6-8: tax. NetPayable = OutputTax - InputTax + Adjustments.
	OutputTax   decimal.Decimal `json:"outputTax"`
	InputTax    decimal.Decimal `json:"inputTax"`
	Adjustments decimal.Decimal `json:"adjustments"` // Manually entered, default zero
	// Box 9.
	NetPayable decimal.Decimal `json:"netPayable"`

	Status              GSTReturnStatus `json:"status"`
	SubmissionReference string          `json:"submissionReference,omitempty"`
	SubmissionDate      *time.Time      `json:"submissionDate,omitempty"`
	SettlementEntryID   *string         `json:"settlementEntryID,omitempty"`
	AuditFields
}

// IsDraft reports whether the return can still be saved or finalized.
func (r *GSTReturn) IsDraft() bool {
	return r.Status == ReturnDraft
}
