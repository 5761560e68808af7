package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. transaction_id is the opaque
// UUID exposed to callers; id is the surrogate key used for lock ordering
// and joins.
type Transaction struct {
	ID             int64           `db:"id"`
	TransactionID  string          `db:"transaction_id"`
	IdempotencyKey string          `db:"idempotency_key"`
	Type           string          `db:"transaction_type"`
	UserID         int64           `db:"user_id"`
	AssetTypeID    int32           `db:"asset_type_id"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	Metadata       []byte          `db:"transaction_metadata"`
	ErrorMessage   *string         `db:"error_message"`
	CreatedAt      time.Time       `db:"created_at"`
	CompletedAt    *time.Time      `db:"completed_at"`
}
