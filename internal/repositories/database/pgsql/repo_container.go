package pgsql

import (
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles all pgsql-backed repositories behind their ports.
type RepositoryProvider struct {
	Wallets      portsrepo.WalletRepositoryFacade
	Transactions portsrepo.TransactionRepositoryFacade
	Ledger       portsrepo.LedgerRepositoryFacade
	AssetTypes   portsrepo.AssetTypeReader
	TxManager    portsrepo.TransactionManager
}

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		Wallets:      newPgxWalletRepository(pool),
		Transactions: newPgxTransactionRepository(pool),
		Ledger:       newPgxLedgerRepository(pool),
		AssetTypes:   newPgxAssetTypeRepository(pool),
		TxManager:    &BaseRepository{Pool: pool},
	}
}
