package mapping

import (
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain journal entry to its row shape.
func ToModelJournalEntry(e domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:         e.EntryID,
		EntryNumber:     e.EntryNumber,
		EntryType:       string(e.EntryType),
		EntryDate:       e.EntryDate,
		Description:     e.Description,
		Reference:       e.Reference,
		CurrencyCode:    e.CurrencyCode,
		Status:          string(e.Status),
		ReversedEntryID: e.ReversedEntryID,
		ReversalEntryID: e.ReversalEntryID,
		PostedAt:        e.PostedAt,
		AuditFields:     ToModelAuditFields(e.AuditFields),
	}
	if e.PostedBy != "" {
		postedBy := e.PostedBy
		m.PostedBy = &postedBy
	}
	return m
}

// ToDomainJournalEntry converts a row shape back to the domain entry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	e := domain.JournalEntry{
		EntryID:         m.EntryID,
		EntryNumber:     m.EntryNumber,
		EntryType:       domain.EntryType(m.EntryType),
		EntryDate:       m.EntryDate,
		Description:     m.Description,
		Reference:       m.Reference,
		CurrencyCode:    m.CurrencyCode,
		Status:          domain.EntryStatus(m.Status),
		ReversedEntryID: m.ReversedEntryID,
		ReversalEntryID: m.ReversalEntryID,
		PostedAt:        m.PostedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.PostedBy != nil {
		e.PostedBy = *m.PostedBy
	}
	return e
}

// ToModelJournalLine converts a domain line to its row shape.
func ToModelJournalLine(l domain.JournalLine) models.JournalLine {
	m := models.JournalLine{
		LineID:      l.LineID,
		EntryID:     l.EntryID,
		AccountID:   l.AccountID,
		Debit:       l.Debit,
		Credit:      l.Credit,
		TaxCode:     l.TaxCode,
		TaxAmount:   l.TaxAmount,
		AuditFields: ToModelAuditFields(l.AuditFields),
	}
	if l.Dimension != "" {
		dim := l.Dimension
		m.Dimension = &dim
	}
	if l.Notes != "" {
		notes := l.Notes
		m.Notes = &notes
	}
	return m
}

// ToDomainJournalLine converts a row shape back to the domain line.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	l := domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		TaxCode:     m.TaxCode,
		TaxAmount:   m.TaxAmount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Dimension != nil {
		l.Dimension = *m.Dimension
	}
	if m.Notes != nil {
		l.Notes = *m.Notes
	}
	return l
}

// ToDomainJournalLines converts a slice of line rows.
func ToDomainJournalLines(ms []models.JournalLine) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainJournalLine(m)
	}
	return lines
}
