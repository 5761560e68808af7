package dto

// BalanceResponse reports the balance of one (user, asset) pair. A user with
// no wallet row reads as a zero balance.
type BalanceResponse struct {
	UserID        int64  `json:"user_id"`
	AssetTypeID   int32  `json:"asset_type_id"`
	AssetTypeCode string `json:"asset_type_code"`
	Balance       string `json:"balance"`
}

// ListLedgerEntriesParams carries the paging inputs of a wallet statement.
type ListLedgerEntriesParams struct {
	Limit     int
	NextToken *string
}

// LedgerEntriesResponse is one page of a wallet statement.
type LedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"next_token,omitempty"`
}
