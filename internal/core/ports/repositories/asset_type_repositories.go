package repositories

import (
	"context"

	"github.com/gamepay/wallet-service/internal/core/domain"
)

// AssetTypeReader defines read operations for asset reference data. Asset
// types are seeded administratively; the engine never writes them.
type AssetTypeReader interface {
	// FindAssetTypeByCode retrieves an asset type by its short code (e.g. COIN).
	FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error)

	// FindAssetTypeByID retrieves an asset type by ID.
	FindAssetTypeByID(ctx context.Context, id int32) (*domain.AssetType, error)

	// ListActiveAssetTypes retrieves all active asset types.
	ListActiveAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}
