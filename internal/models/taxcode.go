package models

import "github.com/shopspring/decimal"

// TaxCode is the tax_codes row shape.
type TaxCode struct {
	Code        string          `db:"code"`
	Description string          `db:"description"`
	Rate        decimal.Decimal `db:"rate"`
	BoxMapping  string          `db:"box_mapping"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
