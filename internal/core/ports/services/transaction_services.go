package services

import (
	"context"

	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/gamepay/wallet-service/internal/dto"
)

// TransactionSvcFacade is the engine surface consumed by the HTTP adapter.
type TransactionSvcFacade interface {
	// Process executes one movement end to end: idempotency fast-path, wallet
	// resolution, ordered locking, validation, balance mutation, double-entry
	// emission and finalization, all inside one database transaction.
	Process(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetByPublicID retrieves a transaction and its two ledger legs.
	GetByPublicID(ctx context.Context, publicID string) (*domain.Transaction, []domain.LedgerEntry, error)
}
