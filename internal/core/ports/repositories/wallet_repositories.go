package repositories

import (
	"context"

	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// WalletReader defines read operations for wallet data.
type WalletReader interface {
	// FindWalletByPrincipalAndAsset retrieves the wallet for a (principal, asset) pair.
	FindWalletByPrincipalAndAsset(ctx context.Context, principalID int64, assetTypeID int32) (*domain.Wallet, error)

	// FindWalletByID retrieves a wallet by its surrogate ID.
	FindWalletByID(ctx context.Context, walletID int64) (*domain.Wallet, error)
}

// WalletTransactionSupport defines the operations the engine performs on
// wallets inside an open database transaction.
type WalletTransactionSupport interface {
	// FindWalletByPrincipalAndAssetInTx is the tx-scoped variant of the pool read.
	FindWalletByPrincipalAndAssetInTx(ctx context.Context, tx pgx.Tx, principalID int64, assetTypeID int32) (*domain.Wallet, error)

	// GetOrCreateWallet returns the wallet for (principal, asset), inserting a
	// zero-balance row if none exists. A concurrent creation race is resolved
	// by the unique index; the loser returns the winning row.
	GetOrCreateWallet(ctx context.Context, tx pgx.Tx, principalID int64, assetTypeID int32) (*domain.Wallet, error)

	// LockWallet acquires an exclusive row lock and returns a fresh view of
	// the row. Blocks until the lock is available.
	LockWallet(ctx context.Context, tx pgx.Tx, walletID int64) (*domain.Wallet, error)

	// ApplyBalanceDelta adds delta to the locked in-memory wallet and persists
	// the new balance against the already-locked row. It must not re-select
	// the row. Fails if the new balance would be negative.
	ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, delta domain.Money) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletTransactionSupport
}
