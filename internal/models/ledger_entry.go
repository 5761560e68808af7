package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the ledger_entries table. Rows are append-only.
type LedgerEntry struct {
	ID                  int64           `db:"id"`
	TransactionPublicID string          `db:"transaction_id"`
	WalletID            int64           `db:"wallet_id"`
	EntryType           string          `db:"entry_type"`
	Amount              decimal.Decimal `db:"amount"`
	BalanceBefore       decimal.Decimal `db:"balance_before"`
	BalanceAfter        decimal.Decimal `db:"balance_after"`
	Description         *string         `db:"description"`
	CreatedAt           time.Time       `db:"created_at"`
}
