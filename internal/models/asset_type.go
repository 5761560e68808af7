package models

import "time"

// AssetType mirrors the asset_types table.
type AssetType struct {
	ID          int32     `db:"id"`
	Code        string    `db:"code"`
	DisplayName string    `db:"display_name"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
