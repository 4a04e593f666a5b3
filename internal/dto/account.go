package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for registering a chart account.
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string `json:"description"`
}

// CreateTaxCodeRequest is the payload for registering a tax code.
type CreateTaxCodeRequest struct {
	Code        string          `json:"code" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
	BoxMapping  string          `json:"boxMapping" binding:"required,oneof=STANDARD_RATED_SUPPLY ZERO_RATED_SUPPLY EXEMPT_SUPPLY TAXABLE_PURCHASE"`
}
