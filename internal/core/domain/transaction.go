package domain

import (
	"encoding/json"
	"time"
)

// TransactionType identifies the movement kind, which fixes the source and
// destination wallets of the double-entry posting.
type TransactionType string

const (
	TypeTopup TransactionType = "TOPUP"
	TypeBonus TransactionType = "BONUS"
	TypeSpend TransactionType = "SPEND"
)

// TransactionStatus is the lifecycle state of a movement record.
// PENDING is the only non-terminal status.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction records a single movement between two wallets. The idempotency
// key binds 1:1 to the committed row; replays return the original record.
type Transaction struct {
	ID             int64
	PublicID       string
	IdempotencyKey string
	Type           TransactionType
	UserID         int64
	AssetTypeID    int32
	Amount         Money
	Status         TransactionStatus
	Metadata       json.RawMessage
	ErrorMessage   string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
