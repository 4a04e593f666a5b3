package accounting

import (
	"fmt"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedLineAmount converts a line's debit/credit pair into a signed balance
// contribution for its account. Debit-normal accounts (assets, expenses) grow
// with debits; credit-normal accounts (liabilities, equity, revenue) grow with
// credits.
func SignedLineAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	side, ok := accountType.NormalBalance()
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	if side == domain.NormalDebit {
		return line.Debit.Sub(line.Credit), nil
	}
	return line.Credit.Sub(line.Debit), nil
}

// SignedAmount converts raw debit/credit totals into a signed balance for the
// given normal balance side.
func SignedAmount(debit, credit decimal.Decimal, side domain.NormalSide) decimal.Decimal {
	if side == domain.NormalDebit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// IsBalanced reports whether the lines' debit and credit totals agree within
// the given tolerance.
func IsBalanced(lines []domain.JournalLine, tolerance decimal.Decimal) bool {
	diff := domain.SumDebits(lines).Sub(domain.SumCredits(lines))
	return diff.Abs().LessThanOrEqual(tolerance)
}
