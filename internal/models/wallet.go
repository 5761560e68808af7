package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet mirrors the wallets table. user_id is the owning principal; system
// wallets use the negative principal IDs and carry system_wallet_type.
type Wallet struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	AssetTypeID      int32           `db:"asset_type_id"`
	Balance          decimal.Decimal `db:"balance"`
	IsSystemWallet   bool            `db:"is_system_wallet"`
	SystemWalletType *string         `db:"system_wallet_type"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
