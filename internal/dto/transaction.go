package dto

import (
	"encoding/json"
	"time"

	"github.com/gamepay/wallet-service/internal/core/domain"
)

// CreateTransactionRequest is the body shared by the topup, bonus and spend
// endpoints. Amount travels as a canonical decimal string; the custom "money"
// binding validator rejects malformed values before the engine runs.
type CreateTransactionRequest struct {
	IdempotencyKey string          `json:"idempotency_key" binding:"required,max=100"`
	UserID         int64           `json:"user_id" binding:"required,gt=0"`
	AssetType      string          `json:"asset_type" binding:"required,max=50"`
	Amount         string          `json:"amount" binding:"required,money"`
	Metadata       json.RawMessage `json:"metadata"`
}

// TransactionResponse is the caller-facing view of a movement record.
type TransactionResponse struct {
	TransactionID  string          `json:"transaction_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	Type           string          `json:"transaction_type"`
	UserID         int64           `json:"user_id"`
	AssetTypeID    int32           `json:"asset_type_id"`
	Amount         string          `json:"amount"`
	Status         string          `json:"status"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

// LedgerEntryResponse is one leg of a posting as returned to callers.
type LedgerEntryResponse struct {
	TransactionID string    `json:"transaction_id"`
	WalletID      int64     `json:"wallet_id"`
	EntryType     string    `json:"entry_type"`
	Amount        string    `json:"amount"`
	BalanceBefore string    `json:"balance_before"`
	BalanceAfter  string    `json:"balance_after"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionDetailResponse combines a transaction with its ledger legs.
type TransactionDetailResponse struct {
	Transaction TransactionResponse   `json:"transaction"`
	Entries     []LedgerEntryResponse `json:"ledger_entries"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.PublicID,
		IdempotencyKey: t.IdempotencyKey,
		Type:           string(t.Type),
		UserID:         t.UserID,
		AssetTypeID:    t.AssetTypeID,
		Amount:         t.Amount.String(),
		Status:         string(t.Status),
		Metadata:       t.Metadata,
		CreatedAt:      t.CreatedAt,
		CompletedAt:    t.CompletedAt,
	}
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		TransactionID: e.TransactionPublicID,
		WalletID:      e.WalletID,
		EntryType:     string(e.EntryType),
		Amount:        e.Amount.String(),
		BalanceBefore: e.BalanceBefore.String(),
		BalanceAfter:  e.BalanceAfter.String(),
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
