package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	"github.com/smebooks/sme_ledger_app/internal/models"
	"github.com/smebooks/sme_ledger_app/internal/utils/mapping"
	"github.com/smebooks/sme_ledger_app/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const entryColumns = `
	entry_id, entry_number, entry_type, entry_date, description, reference,
	currency_code, status, reversed_entry_id, reversal_entry_id, posted_at, posted_by,
	created_at, created_by, last_updated_at, last_updated_by
`

const insertEntryQuery = `
	INSERT INTO journal_entries (
		entry_id, entry_number, entry_type, entry_date, description, reference,
		currency_code, status, reversed_entry_id, reversal_entry_id, posted_at, posted_by,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`

const insertLineQuery = `
	INSERT INTO journal_lines (
		line_id, entry_id, account_id, debit, credit, tax_code, tax_amount,
		dimension, notes, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func insertEntryArgs(m models.JournalEntry) []any {
	return []any{
		m.EntryID, m.EntryNumber, m.EntryType, m.EntryDate, m.Description, m.Reference,
		m.CurrencyCode, m.Status, m.ReversedEntryID, m.ReversalEntryID, m.PostedAt, m.PostedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func queueLineInserts(batch *pgx.Batch, lines []domain.JournalLine) {
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			m.LineID, m.EntryID, m.AccountID, m.Debit, m.Credit, m.TaxCode, m.TaxAmount,
			m.Dimension, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
}

// SaveEntry persists a new entry and its lines within a DB transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelJournalEntry(entry)
	if _, err := tx.Exec(ctx, insertEntryQuery, insertEntryArgs(modelEntry)...); err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateDraftEntry replaces the header fields and lines of a Draft entry. The
// Draft guard lives in the UPDATE's WHERE clause.
func (r *PgxJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	updateQuery := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, reference = $4, currency_code = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, updateQuery, m.EntryID, m.EntryDate, m.Description, m.Reference, m.CurrencyCode, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteDraftEntry removes a Draft entry together with its lines.
func (r *PgxJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND status = 'DRAFT';`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	return r.Commit(ctx, tx)
}

// MarkEntryPosted transitions a Draft entry to Posted. The status guard in the
// WHERE clause makes two concurrent posts serialize: the loser matches zero
// rows and gets ErrConflict.
func (r *PgxJournalRepository) MarkEntryPosted(ctx context.Context, entryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'POSTED', posted_at = $2, posted_by = $3,
		    last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, postedAt, postedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entry posted "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// SaveReversal persists the Posted reversal entry with its lines and flips the
// original to Reversed with the back-link, all in one transaction. The Posted
// guard on the original makes concurrent reversals serialize.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, lines []domain.JournalLine, originalEntryID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelReversal := mapping.ToModelJournalEntry(reversal)
	if _, err := tx.Exec(ctx, insertEntryQuery, insertEntryArgs(modelReversal)...); err != nil {
		return apperrors.NewAppError(500, "failed to insert reversal entry "+modelReversal.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for reversal "+modelReversal.EntryID, err)
	}

	linkQuery := `
		UPDATE journal_entries
		SET status = 'REVERSED', reversal_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = 'POSTED';
	`
	tag, err := tx.Exec(ctx, linkQuery, originalEntryID, reversal.EntryID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entry reversed "+originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	return r.Commit(ctx, tx)
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID, &m.EntryNumber, &m.EntryType, &m.EntryDate, &m.Description, &m.Reference,
		&m.CurrencyCode, &m.Status, &m.ReversedEntryID, &m.ReversalEntryID, &m.PostedAt, &m.PostedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves an entry by its ID, without lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of one entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, tax_code, tax_amount,
		       dimension, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	modelLines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(
			&m.LineID, &m.EntryID, &m.AccountID, &m.Debit, &m.Credit, &m.TaxCode, &m.TaxAmount,
			&m.Dimension, &m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		modelLines = append(modelLines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLines(modelLines), nil
}

// ListEntries retrieves a page of entries newest first, using keyset
// pagination on (entry_date, created_at).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenCreated, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` WHERE (entry_date, created_at) < ($1, $2)`
		args = append(args, tokenDate, tokenCreated)
	}

	// Fetch one extra row to know whether another page exists.
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var newNextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		newNextToken = &token
	}

	return entries, newNextToken, nil
}

// CountDraftEntriesInRange counts Draft entries dated inside [from, to].
func (r *PgxJournalRepository) CountDraftEntriesInRange(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM journal_entries
		WHERE status = 'DRAFT' AND entry_date >= $1 AND entry_date <= $2;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count draft entries", err)
	}
	return count, nil
}
