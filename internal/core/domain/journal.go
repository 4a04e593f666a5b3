package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// EntryType tags how a journal entry came to exist.
type EntryType string

const (
	EntryGeneral    EntryType = "GENERAL"
	EntryRecurring  EntryType = "RECURRING"
	EntrySettlement EntryType = "SETTLEMENT"
	EntryReversal   EntryType = "REVERSAL"
)

// JournalEntry represents a single financial event composed of multiple lines.
// An entry is mutable while Draft and immutable once Posted, except for the
// reversal back-link set when a later entry reverses it.
type JournalEntry struct {
	EntryID         string      `json:"entryID"`     // Primary key (UUID)
	EntryNumber     string      `json:"entryNumber"` // Sequence-assigned, unique per ledger
	EntryType       EntryType   `json:"entryType"`
	EntryDate       time.Time   `json:"entryDate"`
	Description     string      `json:"description"`
	Reference       string      `json:"reference"` // Free-text external reference
	CurrencyCode    string      `json:"currencyCode"`
	Status          EntryStatus `json:"status"`
	ReversedEntryID *string     `json:"reversedEntryID,omitempty"` // Entry this one reverses
	ReversalEntryID *string     `json:"reversalEntryID,omitempty"` // Entry that reverses this one
	PostedAt        *time.Time  `json:"postedAt,omitempty"`
	PostedBy        string      `json:"postedBy,omitempty"`
	AuditFields

	// Lines are loaded separately by default.
	Lines []JournalLine `json:"lines,omitempty"`
}

// IsDraft reports whether the entry can still be edited or deleted.
func (e *JournalEntry) IsDraft() bool {
	return e.Status == Draft
}

// JournalLine is a single debit or credit against one account. Exactly one of
// Debit and Credit is nonzero (and positive).
type JournalLine struct {
	LineID     string          `json:"lineID"`
	EntryID    string          `json:"entryID"`
	AccountID  string          `json:"accountID"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	TaxCode    *string         `json:"taxCode,omitempty"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Dimension  string          `json:"dimension,omitempty"` // Optional analysis tag
	Notes      string          `json:"notes,omitempty"`
	AuditFields
}

// SumDebits returns the total of the debit side of the given lines.
func SumDebits(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Debit)
	}
	return total
}

// SumCredits returns the total of the credit side of the given lines.
func SumCredits(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Credit)
	}
	return total
}
