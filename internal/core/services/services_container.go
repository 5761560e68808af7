package services

import (
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/repositories/database/pgsql"
	"github.com/gamepay/wallet-service/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *pgsql.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(
		repos.Wallets,
		repos.Transactions,
		repos.Ledger,
		repos.AssetTypes,
		repos.TxManager,
		cfg.TxnMaxRetries,
		cfg.TxnRetryBackoff,
	)
	container.Wallet = NewWalletService(
		repos.Wallets,
		repos.Ledger,
		repos.AssetTypes,
	)

	return container
}
