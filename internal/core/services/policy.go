package services

import "github.com/shopspring/decimal"

// PostingPolicy holds the explicitly configurable knobs of the ledger engine.
type PostingPolicy struct {
	// BalanceTolerance is the maximum absolute difference between an entry's
	// debit and credit totals still considered balanced.
	BalanceTolerance decimal.Decimal

	// AllowCloseWithDrafts permits closing a fiscal period while Draft entries
	// are still dated inside it. Those drafts can then never be posted without
	// reopening the period or re-dating them.
	AllowCloseWithDrafts bool
}

// DefaultPostingPolicy returns the policy used when nothing is configured:
// a 0.01 tolerance and periods that refuse to close over open drafts.
func DefaultPostingPolicy() PostingPolicy {
	return PostingPolicy{
		BalanceTolerance:     decimal.RequireFromString("0.01"),
		AllowCloseWithDrafts: false,
	}
}
