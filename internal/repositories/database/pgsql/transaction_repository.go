package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	"github.com/gamepay/wallet-service/internal/models"
	"github.com/gamepay/wallet-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, transaction_id, idempotency_key, transaction_type, user_id, asset_type_id, amount, status, transaction_metadata, error_message, created_at, completed_at`

// uniqueViolation is the Postgres error code for a unique-index violation.
const uniqueViolation = "23505"

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for movement records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.TransactionID,
		&m.IdempotencyKey,
		&m.Type,
		&m.UserID,
		&m.AssetTypeID,
		&m.Amount,
		&m.Status,
		&m.Metadata,
		&m.ErrorMessage,
		&m.CreatedAt,
		&m.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
	}
	t := mapping.ToDomainTransaction(m)
	return &t, nil
}

// FindByIdempotencyKey retrieves the transaction bound to an idempotency key.
func (r *PgxTransactionRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE idempotency_key = $1;
	`
	return scanTransaction(r.Pool.QueryRow(ctx, query, key))
}

// FindByPublicID retrieves a transaction by its caller-facing UUID.
func (r *PgxTransactionRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	return scanTransaction(r.Pool.QueryRow(ctx, query, publicID))
}

// CreatePending inserts the record with status PENDING and returns it with the
// generated surrogate ID. A unique violation on the idempotency key surfaces
// as apperrors.ErrDuplicate; in Postgres the violation also aborts the
// enclosing transaction, so the caller must roll back and re-read by key.
func (r *PgxTransactionRepository) CreatePending(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (transaction_id, idempotency_key, transaction_type, user_id, asset_type_id, amount, status, transaction_metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	var metadata []byte
	if len(txn.Metadata) > 0 {
		metadata = txn.Metadata
	}

	err := tx.QueryRow(ctx, query,
		txn.PublicID,
		txn.IdempotencyKey,
		string(txn.Type),
		txn.UserID,
		txn.AssetTypeID,
		txn.Amount,
		string(domain.StatusPending),
		metadata,
	).Scan(&txn.ID, &txn.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: idempotency key %q", apperrors.ErrDuplicate, txn.IdempotencyKey)
		}
		return nil, apperrors.NewAppError(500, "failed to insert pending transaction "+txn.PublicID, err)
	}

	txn.Status = domain.StatusPending
	return &txn, nil
}

// Finalize transitions a PENDING transaction to a terminal status and sets
// completed_at. The status predicate makes terminal states immutable.
func (r *PgxTransactionRepository) Finalize(ctx context.Context, tx pgx.Tx, id int64, status domain.TransactionStatus, completedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, completed_at = $3
		WHERE id = $1 AND status = 'PENDING';
	`
	cmdTag, err := tx.Exec(ctx, query, id, string(status), completedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to finalize transaction %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %d is not PENDING", apperrors.ErrConflict, id)
	}
	return nil
}
