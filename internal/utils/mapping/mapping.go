// Package mapping converts between DB-shape models and domain objects.
// Monetary columns are NUMERIC(20,8), so decimals coming out of the database
// are wrapped without re-validation.
package mapping

import (
	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/gamepay/wallet-service/internal/models"
)

// ToDomainAssetType converts an asset_types row.
func ToDomainAssetType(m models.AssetType) domain.AssetType {
	return domain.AssetType{
		ID:          m.ID,
		Code:        m.Code,
		DisplayName: m.DisplayName,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainWallet converts a wallets row.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	w := domain.Wallet{
		ID:          m.ID,
		PrincipalID: m.UserID,
		AssetTypeID: m.AssetTypeID,
		Balance:     domain.MoneyFromDecimal(m.Balance),
		IsSystem:    m.IsSystemWallet,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.SystemWalletType != nil {
		kind := domain.SystemWalletKind(*m.SystemWalletType)
		w.SystemKind = &kind
	}
	return w
}

// ToDomainTransaction converts a transactions row.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		ID:             m.ID,
		PublicID:       m.TransactionID,
		IdempotencyKey: m.IdempotencyKey,
		Type:           domain.TransactionType(m.Type),
		UserID:         m.UserID,
		AssetTypeID:    m.AssetTypeID,
		Amount:         domain.MoneyFromDecimal(m.Amount),
		Status:         domain.TransactionStatus(m.Status),
		Metadata:       m.Metadata,
		CreatedAt:      m.CreatedAt,
		CompletedAt:    m.CompletedAt,
	}
	if m.ErrorMessage != nil {
		t.ErrorMessage = *m.ErrorMessage
	}
	return t
}

// ToDomainLedgerEntry converts a ledger_entries row.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	e := domain.LedgerEntry{
		ID:                  m.ID,
		TransactionPublicID: m.TransactionPublicID,
		WalletID:            m.WalletID,
		EntryType:           domain.EntryType(m.EntryType),
		Amount:              domain.MoneyFromDecimal(m.Amount),
		BalanceBefore:       domain.MoneyFromDecimal(m.BalanceBefore),
		BalanceAfter:        domain.MoneyFromDecimal(m.BalanceAfter),
		CreatedAt:           m.CreatedAt,
	}
	if m.Description != nil {
		e.Description = *m.Description
	}
	return e
}

// ToDomainLedgerEntrySlice converts a batch of ledger_entries rows.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainLedgerEntry(m)
	}
	return entries
}
