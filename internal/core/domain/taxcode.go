package domain

import "github.com/shopspring/decimal"

// GSTBoxMapping classifies how line amounts carrying a tax code land in the
// GST F5 return boxes.
type GSTBoxMapping string

const (
	BoxStandardRatedSupply GSTBoxMapping = "STANDARD_RATED_SUPPLY" // Box 1, output tax in box 6
	BoxZeroRatedSupply     GSTBoxMapping = "ZERO_RATED_SUPPLY"     // Box 2
	BoxExemptSupply        GSTBoxMapping = "EXEMPT_SUPPLY"         // Box 3
	BoxTaxablePurchase     GSTBoxMapping = "TAXABLE_PURCHASE"      // Box 5, input tax in box 7
)

// TaxCode is a registry record mapping a code to its rate and F5 box.
type TaxCode struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"` // Percentage, e.g. 9 for 9%
	BoxMapping  GSTBoxMapping   `json:"boxMapping"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
