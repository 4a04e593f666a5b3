package mapping

import (
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/models"
)

// ToModelGSTReturn converts a domain GST return to its row shape.
func ToModelGSTReturn(r domain.GSTReturn) models.GSTReturn {
	m := models.GSTReturn{
		ReturnID:      r.ReturnID,
		PeriodStart:   r.PeriodStart,
		PeriodEnd:     r.PeriodEnd,
		FilingDueDate: r.FilingDueDate,

		StandardRatedSupplies: r.StandardRatedSupplies,
		ZeroRatedSupplies:     r.ZeroRatedSupplies,
		ExemptSupplies:        r.ExemptSupplies,
		TotalSupplies:         r.TotalSupplies,
		TaxablePurchases:      r.TaxablePurchases,
		OutputTax:             r.OutputTax,
		InputTax:              r.InputTax,
		Adjustments:           r.Adjustments,
		NetPayable:            r.NetPayable,

		Status:            string(r.Status),
		SubmissionDate:    r.SubmissionDate,
		SettlementEntryID: r.SettlementEntryID,
		AuditFields:       ToModelAuditFields(r.AuditFields),
	}
	if r.SubmissionReference != "" {
		ref := r.SubmissionReference
		m.SubmissionReference = &ref
	}
	return m
}

// ToDomainGSTReturn converts a row shape back to the domain GST return.
func ToDomainGSTReturn(m models.GSTReturn) domain.GSTReturn {
	r := domain.GSTReturn{
		ReturnID:      m.ReturnID,
		PeriodStart:   m.PeriodStart,
		PeriodEnd:     m.PeriodEnd,
		FilingDueDate: m.FilingDueDate,

		StandardRatedSupplies: m.StandardRatedSupplies,
		ZeroRatedSupplies:     m.ZeroRatedSupplies,
		ExemptSupplies:        m.ExemptSupplies,
		TotalSupplies:         m.TotalSupplies,
		TaxablePurchases:      m.TaxablePurchases,
		OutputTax:             m.OutputTax,
		InputTax:              m.InputTax,
		Adjustments:           m.Adjustments,
		NetPayable:            m.NetPayable,

		Status:            domain.GSTReturnStatus(m.Status),
		SubmissionDate:    m.SubmissionDate,
		SettlementEntryID: m.SettlementEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.SubmissionReference != nil {
		r.SubmissionReference = *m.SubmissionReference
	}
	return r
}
