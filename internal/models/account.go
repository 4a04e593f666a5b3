package models

// Account is the accounts row shape.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
