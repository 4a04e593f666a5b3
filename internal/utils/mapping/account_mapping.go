package mapping

import (
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/models"
)

// ToModelAccount converts a domain account to its row shape.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Description: a.Description,
		IsActive:    a.IsActive,
		AuditFields: ToModelAuditFields(a.AuditFields),
	}
}

// ToDomainAccount converts a row shape back to the domain account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTaxCode converts a domain tax code to its row shape.
func ToModelTaxCode(t domain.TaxCode) models.TaxCode {
	return models.TaxCode{
		Code:        t.Code,
		Description: t.Description,
		Rate:        t.Rate,
		BoxMapping:  string(t.BoxMapping),
		IsActive:    t.IsActive,
		AuditFields: ToModelAuditFields(t.AuditFields),
	}
}

// ToDomainTaxCode converts a row shape back to the domain tax code.
func ToDomainTaxCode(m models.TaxCode) domain.TaxCode {
	return domain.TaxCode{
		Code:        m.Code,
		Description: m.Description,
		Rate:        m.Rate,
		BoxMapping:  domain.GSTBoxMapping(m.BoxMapping),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
