package pgsql

import (
	"context"
	"errors"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	"github.com/gamepay/wallet-service/internal/models"
	"github.com/gamepay/wallet-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetTypeColumns = `id, code, display_name, is_active, created_at, updated_at`

type PgxAssetTypeRepository struct {
	BaseRepository
}

// newPgxAssetTypeRepository creates a new repository for asset reference data.
func newPgxAssetTypeRepository(pool *pgxpool.Pool) portsrepo.AssetTypeReader {
	return &PgxAssetTypeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetTypeRepository implements portsrepo.AssetTypeReader
var _ portsrepo.AssetTypeReader = (*PgxAssetTypeRepository)(nil)

func scanAssetType(row pgx.Row) (*domain.AssetType, error) {
	var m models.AssetType
	err := row.Scan(
		&m.ID,
		&m.Code,
		&m.DisplayName,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan asset type row", err)
	}
	a := mapping.ToDomainAssetType(m)
	return &a, nil
}

// FindAssetTypeByCode retrieves an asset type by its short code (e.g. COIN).
func (r *PgxAssetTypeRepository) FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error) {
	query := `
		SELECT ` + assetTypeColumns + `
		FROM asset_types
		WHERE code = $1;
	`
	return scanAssetType(r.Pool.QueryRow(ctx, query, code))
}

// FindAssetTypeByID retrieves an asset type by ID.
func (r *PgxAssetTypeRepository) FindAssetTypeByID(ctx context.Context, id int32) (*domain.AssetType, error) {
	query := `
		SELECT ` + assetTypeColumns + `
		FROM asset_types
		WHERE id = $1;
	`
	return scanAssetType(r.Pool.QueryRow(ctx, query, id))
}

// ListActiveAssetTypes retrieves all active asset types.
func (r *PgxAssetTypeRepository) ListActiveAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `
		SELECT ` + assetTypeColumns + `
		FROM asset_types
		WHERE is_active = TRUE
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active asset types", err)
	}
	defer rows.Close()

	assetTypes := []domain.AssetType{}
	for rows.Next() {
		var m models.AssetType
		if err := rows.Scan(
			&m.ID,
			&m.Code,
			&m.DisplayName,
			&m.IsActive,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan asset type row", err)
		}
		assetTypes = append(assetTypes, mapping.ToDomainAssetType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating asset type rows", err)
	}
	return assetTypes, nil
}
