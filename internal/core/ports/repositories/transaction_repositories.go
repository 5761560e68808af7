package repositories

import (
	"context"
	"time"

	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for movement records.
type TransactionReader interface {
	// FindByIdempotencyKey retrieves the transaction bound to an idempotency key.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)

	// FindByPublicID retrieves a transaction by its caller-facing UUID.
	FindByPublicID(ctx context.Context, publicID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for movement records.
type TransactionWriter interface {
	// CreatePending inserts the record with status PENDING and returns it with
	// the generated surrogate ID. A unique violation on the idempotency key
	// surfaces as apperrors.ErrDuplicate; the caller owns the rollback.
	CreatePending(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)

	// Finalize transitions a PENDING transaction to a terminal status and sets
	// completed_at. Transitions from terminal statuses are rejected.
	Finalize(ctx context.Context, tx pgx.Tx, id int64, status domain.TransactionStatus, completedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction-record interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
