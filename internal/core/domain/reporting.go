package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodBalance is the opening/activity/closing triple for one account over a
// date window.
type PeriodBalance struct {
	AccountID string          `json:"accountID"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Opening   decimal.Decimal `json:"opening"`
	Activity  decimal.Decimal `json:"activity"`
	Closing   decimal.Decimal `json:"closing"`
}

// LedgerLine is one posted line of an account's history enriched with its
// entry header and a running balance.
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	EntryNumber    string          `json:"entryNumber"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TrialBalanceRow is a single account in a trial balance report. Exactly one
// of Debit/Credit is nonzero, chosen by the sign of the account balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account balance split into debit/credit
// columns whose totals must match.
type TrialBalanceReport struct {
	AsOf         time.Time         `json:"asOf"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
}

// AccountAmount is an account with its net amount for grouped reports.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// BalanceSheetReport groups account balances by top-level category as of a date.
// IsBalanced is reported, never enforced: an imbalance is a data-quality
// signal, not an engine error.
type BalanceSheetReport struct {
	AsOf                  time.Time       `json:"asOf"`
	Assets                []AccountAmount `json:"assets"`
	Liabilities           []AccountAmount `json:"liabilities"`
	Equity                []AccountAmount `json:"equity"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	TotalEquity           decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal `json:"totalLiabilitiesEquity"`
	IsBalanced            bool            `json:"isBalanced"`
}

// PAndLReport is a profit and loss statement for a period.
type PAndLReport struct {
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// GeneralLedgerReport is the chronological history of a single account with a
// running balance seeded from the opening balance.
type GeneralLedgerReport struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TaxLine is a posted journal line carrying a tax code, as read for GST
// return preparation.
type TaxLine struct {
	EntryID   string          `json:"entryID"`
	EntryDate time.Time       `json:"entryDate"`
	AccountID string          `json:"accountID"`
	TaxCode   string          `json:"taxCode"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
}
