package services

import (
	"context"

	"github.com/gamepay/wallet-service/internal/dto"
)

// WalletSvcFacade exposes the read-only wallet surface. No locking is
// involved; reads observe the latest committed state.
type WalletSvcFacade interface {
	// GetBalance returns the balance for (user, asset). Users without a wallet
	// row read as zero.
	GetBalance(ctx context.Context, userID int64, assetTypeID int32) (*dto.BalanceResponse, error)

	// ListLedgerEntries returns one page of the wallet's statement.
	ListLedgerEntries(ctx context.Context, userID int64, assetTypeID int32, params dto.ListLedgerEntriesParams) (*dto.LedgerEntriesResponse, error)
}
