package repositories

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines belonging to a single entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves a paginated list of entries using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// CountDraftEntriesInRange counts Draft entries dated inside [from, to].
	// Used by the period close policy check.
	CountDraftEntriesInRange(ctx context.Context, from, to time.Time) (int, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveEntry persists a new entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateDraftEntry replaces the header fields and lines of a Draft entry.
	// Returns apperrors.ErrConflict if the entry is no longer Draft.
	UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// DeleteDraftEntry removes a Draft entry together with its lines.
	// Returns apperrors.ErrConflict if the entry is no longer Draft.
	DeleteDraftEntry(ctx context.Context, entryID string) error

	// MarkEntryPosted transitions a Draft entry to Posted. The guard is
	// enforced in SQL so two concurrent posts cannot both succeed; the loser
	// gets apperrors.ErrConflict.
	MarkEntryPosted(ctx context.Context, entryID string, postedBy string, postedAt time.Time) error

	// SaveReversal persists the already-Posted reversal entry with its lines
	// and flips the original entry to Reversed with the back-link, all in one
	// database transaction.
	SaveReversal(ctx context.Context, reversal domain.JournalEntry, lines []domain.JournalLine, originalEntryID string, userID string, now time.Time) error
}

// JournalRepository combines all journal-related repository interfaces.
type JournalRepository interface {
	EntryReader
	EntryWriter
}
