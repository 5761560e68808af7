package domain

import "time"

// AssetType is an administratively seeded currency kind (e.g. COIN, GEM).
// The engine treats asset types as immutable reference data.
type AssetType struct {
	ID          int32
	Code        string
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
