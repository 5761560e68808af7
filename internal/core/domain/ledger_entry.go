package domain

import "time"

// EntryType indicates whether a ledger entry debits or credits its wallet.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// SignedAmount returns the entry amount with the double-entry sign
// convention applied: credits positive, debits negative.
func SignedAmount(entryType EntryType, amount Money) Money {
	if entryType == Debit {
		return amount.Neg()
	}
	return amount
}

// LedgerEntry is one leg of a double-entry posting. Every completed
// transaction has exactly two entries, one DEBIT and one CREDIT of equal
// magnitude, written in the same database transaction as the balance
// mutations they describe.
type LedgerEntry struct {
	ID                  int64
	TransactionPublicID string
	WalletID            int64
	EntryType           EntryType
	Amount              Money
	BalanceBefore       Money
	BalanceAfter        Money
	Description         string
	CreatedAt           time.Time
}
