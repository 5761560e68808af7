package pgsql

import (
	"context"
	"strconv"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	"github.com/gamepay/wallet-service/internal/models"
	"github.com/gamepay/wallet-service/internal/utils/mapping"
	"github.com/gamepay/wallet-service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `id, transaction_id, wallet_id, entry_type, amount, balance_before, balance_after, description, created_at`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendEntries writes the double-entry legs of one transaction. The ledger is
// append-only; there is no update or delete surface.
func (r *PgxLedgerRepository) AppendEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO ledger_entries (transaction_id, wallet_id, entry_type, amount, balance_before, balance_after, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		var description *string
		if entry.Description != "" {
			d := entry.Description
			description = &d
		}
		batch.Queue(query,
			entry.TransactionPublicID,
			entry.WalletID,
			string(entry.EntryType),
			entry.Amount,
			entry.BalanceBefore,
			entry.BalanceAfter,
			description,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to append ledger entries for transaction "+entries[0].TransactionPublicID, err)
	}
	return nil
}

func scanLedgerEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.ID,
			&m.TransactionPublicID,
			&m.WalletID,
			&m.EntryType,
			&m.Amount,
			&m.BalanceBefore,
			&m.BalanceAfter,
			&m.Description,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return entries, nil
}

// FindEntriesByTransactionPublicID retrieves both legs of a transaction in
// insertion order.
func (r *PgxLedgerRepository) FindEntriesByTransactionPublicID(ctx context.Context, publicID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, publicID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for transaction "+publicID, err)
	}
	modelEntries, err := scanLedgerEntries(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// ListEntriesByWalletID retrieves a token-paginated wallet statement, newest
// first. The cursor is (created_at, id) so rows created in the same
// microsecond still page deterministically.
func (r *PgxLedgerRepository) ListEntriesByWalletID(ctx context.Context, walletID int64, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{walletID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (created_at, id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for wallet", err)
	}

	modelEntries, err := scanLedgerEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ID)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}
