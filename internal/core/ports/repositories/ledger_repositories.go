package repositories

import (
	"context"

	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerWriter defines the append-only write surface of the ledger.
type LedgerWriter interface {
	// AppendEntries writes the double-entry legs of one transaction. Must run
	// in the same database transaction as the balance mutations they record.
	AppendEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
}

// LedgerReader defines read operations over ledger entries.
type LedgerReader interface {
	// FindEntriesByTransactionPublicID retrieves both legs of a transaction.
	FindEntriesByTransactionPublicID(ctx context.Context, publicID string) ([]domain.LedgerEntry, error)

	// ListEntriesByWalletID retrieves a token-paginated wallet statement,
	// newest first. Returns the entries and the token for the next page.
	ListEntriesByWalletID(ctx context.Context, walletID int64, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerRepositoryFacade combines the ledger interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
