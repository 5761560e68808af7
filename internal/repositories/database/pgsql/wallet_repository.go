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
	"github.com/jackc/pgx/v5/pgxpool"
)

const walletColumns = `id, user_id, asset_type_id, balance, is_system_wallet, system_wallet_type, created_at, updated_at`

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.AssetTypeID,
		&m.Balance,
		&m.IsSystemWallet,
		&m.SystemWalletType,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan wallet row", err)
	}
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// FindWalletByPrincipalAndAsset retrieves the wallet for a (principal, asset) pair.
func (r *PgxWalletRepository) FindWalletByPrincipalAndAsset(ctx context.Context, principalID int64, assetTypeID int32) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1 AND asset_type_id = $2;
	`
	return scanWallet(r.Pool.QueryRow(ctx, query, principalID, assetTypeID))
}

// FindWalletByID retrieves a wallet by its surrogate ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID int64) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE id = $1;
	`
	return scanWallet(r.Pool.QueryRow(ctx, query, walletID))
}

// FindWalletByPrincipalAndAssetInTx is the tx-scoped variant of the pool read.
func (r *PgxWalletRepository) FindWalletByPrincipalAndAssetInTx(ctx context.Context, tx pgx.Tx, principalID int64, assetTypeID int32) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1 AND asset_type_id = $2;
	`
	return scanWallet(tx.QueryRow(ctx, query, principalID, assetTypeID))
}

// GetOrCreateWallet returns the wallet for (principal, asset), inserting a
// zero-balance row if none exists. ON CONFLICT DO NOTHING keeps a lost
// creation race from aborting the enclosing transaction; the loser falls
// through to re-reading the winner's row.
func (r *PgxWalletRepository) GetOrCreateWallet(ctx context.Context, tx pgx.Tx, principalID int64, assetTypeID int32) (*domain.Wallet, error) {
	var systemKind *string
	isSystem := false
	if kind, ok := domain.SystemKindForPrincipal(principalID); ok {
		isSystem = true
		k := string(kind)
		systemKind = &k
	}

	insertQuery := `
		INSERT INTO wallets (user_id, asset_type_id, balance, is_system_wallet, system_wallet_type)
		VALUES ($1, $2, 0, $3, $4)
		ON CONFLICT (user_id, asset_type_id) DO NOTHING
		RETURNING ` + walletColumns + `;
	`
	wallet, err := scanWallet(tx.QueryRow(ctx, insertQuery, principalID, assetTypeID, isSystem, systemKind))
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to create wallet for principal %d asset %d: %w", principalID, assetTypeID, err)
	}

	// Conflict path: another session inserted the row first.
	wallet, err = r.FindWalletByPrincipalAndAssetInTx(ctx, tx, principalID, assetTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read wallet for principal %d asset %d after conflict: %w", principalID, assetTypeID, err)
	}
	return wallet, nil
}

// LockWallet acquires an exclusive row lock and returns a fresh view of the
// row. Must be called inside an open transaction; blocks until the lock is
// available.
func (r *PgxWalletRepository) LockWallet(ctx context.Context, tx pgx.Tx, walletID int64) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE id = $1
		FOR UPDATE;
	`
	return scanWallet(tx.QueryRow(ctx, query, walletID))
}

// ApplyBalanceDelta adds delta to the locked in-memory wallet and persists the
// new balance against the already-locked row. The update is keyed on the row
// we hold the lock for and never re-selects; deciding on a fresh read would
// bypass the lock's point.
func (r *PgxWalletRepository) ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, delta domain.Money) error {
	newBalance, err := wallet.Balance.Add(delta)
	if err != nil {
		return fmt.Errorf("failed to compute new balance for wallet %d: %w", wallet.ID, err)
	}
	if newBalance.IsNegative() {
		return fmt.Errorf("%w: wallet %d balance would drop to %s", apperrors.ErrInvariant, wallet.ID, newBalance)
	}

	now := time.Now().UTC()
	query := `
		UPDATE wallets
		SET balance = $2, updated_at = $3
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, wallet.ID, newBalance, now)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update balance for wallet %d", wallet.ID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("wallet %d not found for balance update", wallet.ID))
	}

	wallet.Balance = newBalance
	wallet.UpdatedAt = now
	return nil
}
