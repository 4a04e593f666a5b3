package dto

import (
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one line of a draft entry request. Exactly one of
// debit/credit must be nonzero; that rule is checked by the service so every
// violation is reported together, not by binding.
type CreateEntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxCode   *string         `json:"taxCode,omitempty"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Dimension string          `json:"dimension,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// CreateEntryRequest is the payload for creating a draft journal entry.
type CreateEntryRequest struct {
	Date         time.Time                `json:"date" binding:"required"`
	Description  string                   `json:"description" binding:"required"`
	Reference    string                   `json:"reference,omitempty"`
	CurrencyCode string                   `json:"currencyCode" binding:"required,len=3"`
	Lines        []CreateEntryLineRequest `json:"lines"`

	// EntryType is set internally by the scheduler and the GST settlement
	// flow; API callers always get GENERAL.
	EntryType string `json:"-"`
}

// UpdateEntryRequest replaces a draft entry's header and lines wholesale.
type UpdateEntryRequest struct {
	Date         time.Time                `json:"date" binding:"required"`
	Description  string                   `json:"description" binding:"required"`
	Reference    string                   `json:"reference,omitempty"`
	CurrencyCode string                   `json:"currencyCode" binding:"required,len=3"`
	Lines        []CreateEntryLineRequest `json:"lines"`
}

// ReverseEntryRequest carries the date the reversal entry is posted under.
type ReverseEntryRequest struct {
	ReversalDate time.Time `json:"reversalDate" binding:"required"`
}

// ListEntriesParams holds pagination parameters for listing entries.
type ListEntriesParams struct {
	Limit        int     `form:"limit"`
	NextToken    *string `form:"nextToken"`
	IncludeLines bool    `form:"includeLines"`
}

// EntryLineResponse is the display shape of a journal line. Amounts are
// rounded to 2 decimal places here and nowhere earlier.
type EntryLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxCode   *string         `json:"taxCode,omitempty"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Dimension string          `json:"dimension,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// EntryResponse is the display shape of a journal entry.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	EntryNumber     string              `json:"entryNumber"`
	EntryType       string              `json:"entryType"`
	Date            time.Time           `json:"date"`
	Description     string              `json:"description"`
	Reference       string              `json:"reference,omitempty"`
	CurrencyCode    string              `json:"currencyCode"`
	Status          string              `json:"status"`
	ReversedEntryID *string             `json:"reversedEntryID,omitempty"`
	ReversalEntryID *string             `json:"reversalEntryID,omitempty"`
	PostedAt        *time.Time          `json:"postedAt,omitempty"`
	PostedBy        string              `json:"postedBy,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
	Lines           []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesResponse is a page of entries plus the token for the next page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain line to its display shape.
func ToEntryLineResponse(l *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Debit:     l.Debit.Round(2),
		Credit:    l.Credit.Round(2),
		TaxCode:   l.TaxCode,
		TaxAmount: l.TaxAmount.Round(2),
		Dimension: l.Dimension,
		Notes:     l.Notes,
	}
}

// ToEntryResponse converts a domain entry (with whatever lines are loaded) to
// its display shape.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:         e.EntryID,
		EntryNumber:     e.EntryNumber,
		EntryType:       string(e.EntryType),
		Date:            e.EntryDate,
		Description:     e.Description,
		Reference:       e.Reference,
		CurrencyCode:    e.CurrencyCode,
		Status:          string(e.Status),
		ReversedEntryID: e.ReversedEntryID,
		ReversalEntryID: e.ReversalEntryID,
		PostedAt:        e.PostedAt,
		PostedBy:        e.PostedBy,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToEntryLineResponse(&e.Lines[i])
		}
	}
	return resp
}
