package domain

import "time"

// SystemWalletKind tags the three seeded system wallets.
type SystemWalletKind string

const (
	SystemTreasury  SystemWalletKind = "TREASURY"
	SystemMarketing SystemWalletKind = "MARKETING"
	SystemRevenue   SystemWalletKind = "REVENUE"
)

// System principals use negative IDs so a single (principal, asset) unique
// index covers user and system wallets alike.
const (
	PrincipalTreasury  int64 = -1
	PrincipalMarketing int64 = -2
	PrincipalRevenue   int64 = -3
)

// SystemKindForPrincipal returns the system wallet kind for a negative
// principal ID, or false for user principals.
func SystemKindForPrincipal(principalID int64) (SystemWalletKind, bool) {
	switch principalID {
	case PrincipalTreasury:
		return SystemTreasury, true
	case PrincipalMarketing:
		return SystemMarketing, true
	case PrincipalRevenue:
		return SystemRevenue, true
	default:
		return "", false
	}
}

// Wallet holds a non-negative balance of one asset type for one principal.
// User wallets are created lazily on first movement; system wallets are
// seeded and must already exist.
type Wallet struct {
	ID          int64
	PrincipalID int64
	AssetTypeID int32
	Balance     Money
	IsSystem    bool
	SystemKind  *SystemWalletKind
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
