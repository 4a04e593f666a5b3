package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

// LedgerPostingSvc validates, persists, posts and reverses journal entries.
type LedgerPostingSvc interface {
	// CreateDraftEntry validates the request structurally, accumulating every
	// validation failure into one apperrors.ValidationErrors, assigns a
	// sequence number and persists the entry as Draft.
	CreateDraftEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateDraftEntry replaces a Draft entry's header and lines after the
	// same accumulated validation as creation.
	UpdateDraftEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteDraftEntry removes a Draft entry and its lines.
	DeleteDraftEntry(ctx context.Context, entryID string, userID string) error

	// PostEntry transitions a Draft entry to Posted. Fail-fast preconditions:
	// entry is Draft, debits and credits agree within the balance tolerance,
	// and the entry date falls inside an Open fiscal period.
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// ReverseEntry creates and posts a new entry with every line's sides
	// swapped, dated at reversalDate, linking both directions and marking the
	// original Reversed.
	ReverseEntry(ctx context.Context, entryID string, reversalDate time.Time, userID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry together with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
