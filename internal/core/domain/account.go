package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalSide indicates on which side an account's natural positive balance sits.
type NormalSide string

const (
	NormalDebit  NormalSide = "DEBIT"
	NormalCredit NormalSide = "CREDIT"
)

// NormalBalance returns the normal balance side for the account type.
// Assets and expenses grow on the debit side; liabilities, equity and revenue
// grow on the credit side. The boolean is false for an unknown type so callers
// can surface a data error instead of guessing.
func (t AccountType) NormalBalance() (NormalSide, bool) {
	switch t {
	case Asset, Expense:
		return NormalDebit, true
	case Liability, Equity, Revenue:
		return NormalCredit, true
	default:
		return "", false
	}
}

// Account is the chart-of-accounts record the ledger core reads. The directory
// itself (CRUD, hierarchy, numbering scheme) is owned elsewhere.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"` // User-facing account code, unique
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
