package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTReturn is the gst_returns row shape.
type GSTReturn struct {
	ReturnID      string    `db:"return_id"`
	PeriodStart   time.Time `db:"period_start"`
	PeriodEnd     time.Time `db:"period_end"`
	FilingDueDate time.Time `db:"filing_due_date"`

	StandardRatedSupplies decimal.Decimal `db:"standard_rated_supplies"`
	ZeroRatedSupplies     decimal.Decimal `db:"zero_rated_supplies"`
	ExemptSupplies        decimal.Decimal `db:"exempt_supplies"`
	TotalSupplies         decimal.Decimal `db:"total_supplies"`
	TaxablePurchases      decimal.Decimal `db:"taxable_purchases"`
	OutputTax             decimal.Decimal `db:"output_tax"`
	InputTax              decimal.Decimal `db:"input_tax"`
	Adjustments           decimal.Decimal `db:"adjustments"`
	NetPayable            decimal.Decimal `db:"net_payable"`

	Status              string     `db:"status"`
	SubmissionReference *string    `db:"submission_reference"`
	SubmissionDate      *time.Time `db:"submission_date"`
	SettlementEntryID   *string    `db:"settlement_entry_id"`
	AuditFields
}
