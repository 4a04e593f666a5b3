package accounting_test

import (
	"testing"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debitLine(amount int64) domain.JournalLine {
	return domain.JournalLine{Debit: decimal.NewFromInt(amount), Credit: decimal.Zero}
}

func creditLine(amount int64) domain.JournalLine {
	return domain.JournalLine{Debit: decimal.Zero, Credit: decimal.NewFromInt(amount)}
}

func TestSignedLineAmount_DebitNormal(t *testing.T) {
	got, err := accounting.SignedLineAmount(debitLine(100), domain.Asset)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	got, err = accounting.SignedLineAmount(creditLine(40), domain.Expense)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-40)))
}

func TestSignedLineAmount_CreditNormal(t *testing.T) {
	got, err := accounting.SignedLineAmount(creditLine(100), domain.Revenue)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	got, err = accounting.SignedLineAmount(debitLine(25), domain.Liability)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-25)))
}

func TestSignedLineAmount_UnknownType(t *testing.T) {
	_, err := accounting.SignedLineAmount(debitLine(1), domain.AccountType("SUSPENSE"))
	assert.Error(t, err)
}

func TestIsBalanced(t *testing.T) {
	tolerance := decimal.RequireFromString("0.01")

	assert.True(t, accounting.IsBalanced([]domain.JournalLine{debitLine(100), creditLine(100)}, tolerance))
	assert.False(t, accounting.IsBalanced([]domain.JournalLine{debitLine(100), creditLine(99)}, tolerance))

	// Within tolerance.
	lines := []domain.JournalLine{
		{Debit: decimal.RequireFromString("33.335"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: decimal.RequireFromString("33.33")},
	}
	assert.True(t, accounting.IsBalanced(lines, tolerance))
}
