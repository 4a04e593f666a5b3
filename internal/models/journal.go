package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the journal_entries row shape.
type JournalEntry struct {
	EntryID         string     `db:"entry_id"`
	EntryNumber     string     `db:"entry_number"`
	EntryType       string     `db:"entry_type"`
	EntryDate       time.Time  `db:"entry_date"`
	Description     string     `db:"description"`
	Reference       string     `db:"reference"`
	CurrencyCode    string     `db:"currency_code"`
	Status          string     `db:"status"`
	ReversedEntryID *string    `db:"reversed_entry_id"`
	ReversalEntryID *string    `db:"reversal_entry_id"`
	PostedAt        *time.Time `db:"posted_at"`
	PostedBy        *string    `db:"posted_by"`
	AuditFields
}

// JournalLine is the journal_lines row shape.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	TaxCode   *string         `db:"tax_code"`
	TaxAmount decimal.Decimal `db:"tax_amount"`
	Dimension *string         `db:"dimension"`
	Notes     *string         `db:"notes"`
	AuditFields
}
