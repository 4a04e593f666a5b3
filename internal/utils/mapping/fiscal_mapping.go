package mapping

import (
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/models"
)

// ToModelFiscalYear converts a domain fiscal year to its row shape.
func ToModelFiscalYear(y domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: y.FiscalYearID,
		Name:         y.Name,
		StartDate:    y.StartDate,
		EndDate:      y.EndDate,
		IsClosed:     y.IsClosed,
		ClosedAt:     y.ClosedAt,
		AuditFields:  ToModelAuditFields(y.AuditFields),
	}
}

// ToDomainFiscalYear converts a row shape back to the domain fiscal year.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsClosed:     m.IsClosed,
		ClosedAt:     m.ClosedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFiscalPeriod converts a domain period to its row shape.
func ToModelFiscalPeriod(p domain.FiscalPeriod) models.FiscalPeriod {
	return models.FiscalPeriod{
		PeriodID:     p.PeriodID,
		FiscalYearID: p.FiscalYearID,
		PeriodType:   string(p.PeriodType),
		Sequence:     p.Sequence,
		Name:         p.Name,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       string(p.Status),
		AuditFields:  ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainFiscalPeriod converts a row shape back to the domain period.
func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		PeriodID:     m.PeriodID,
		FiscalYearID: m.FiscalYearID,
		PeriodType:   domain.PeriodType(m.PeriodType),
		Sequence:     m.Sequence,
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       domain.PeriodStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
