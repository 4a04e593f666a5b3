package mapping

import (
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/models"
)

// ToModelRecurringPattern converts a domain pattern to its row shape.
func ToModelRecurringPattern(p domain.RecurringPattern) models.RecurringPattern {
	return models.RecurringPattern{
		PatternID:    p.PatternID,
		Name:         p.Name,
		Description:  p.Description,
		CurrencyCode: p.CurrencyCode,
		Interval:     string(p.Interval),
		NextRunDate:  p.NextRunDate,
		EndDate:      p.EndDate,
		IsActive:     p.IsActive,
		AuditFields:  ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainRecurringPattern converts a row shape back to the domain pattern.
func ToDomainRecurringPattern(m models.RecurringPattern) domain.RecurringPattern {
	return domain.RecurringPattern{
		PatternID:    m.PatternID,
		Name:         m.Name,
		Description:  m.Description,
		CurrencyCode: m.CurrencyCode,
		Interval:     domain.RecurrenceInterval(m.Interval),
		NextRunDate:  m.NextRunDate,
		EndDate:      m.EndDate,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPatternLine converts a domain template line to its row shape.
func ToModelPatternLine(l domain.PatternLine) models.PatternLine {
	return models.PatternLine{
		PatternLineID: l.PatternLineID,
		PatternID:     l.PatternID,
		AccountID:     l.AccountID,
		Debit:         l.Debit,
		Credit:        l.Credit,
		TaxCode:       l.TaxCode,
		TaxAmount:     l.TaxAmount,
	}
}

// ToDomainPatternLine converts a row shape back to the domain template line.
func ToDomainPatternLine(m models.PatternLine) domain.PatternLine {
	return domain.PatternLine{
		PatternLineID: m.PatternLineID,
		PatternID:     m.PatternID,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		TaxCode:       m.TaxCode,
		TaxAmount:     m.TaxAmount,
	}
}
