package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/dto"
)

const (
	defaultStatementLimit = 20
	maxStatementLimit     = 100
)

// walletService serves the read-only wallet surface. It never locks rows;
// reads observe the latest committed state.
type walletService struct {
	walletRepo portsrepo.WalletReader
	ledgerRepo portsrepo.LedgerReader
	assetRepo  portsrepo.AssetTypeReader
}

// NewWalletService creates the wallet read service.
func NewWalletService(walletRepo portsrepo.WalletReader, ledgerRepo portsrepo.LedgerReader, assetRepo portsrepo.AssetTypeReader) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		assetRepo:  assetRepo,
	}
}

// Ensure walletService implements the portssvc.WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// GetBalance returns the balance for (user, asset). A user who never
// transacted has no wallet row and reads as zero.
func (s *walletService) GetBalance(ctx context.Context, userID int64, assetTypeID int32) (*dto.BalanceResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be positive", apperrors.ErrValidation)
	}

	assetType, err := s.assetRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown asset type %d", apperrors.ErrInvalidAsset, assetTypeID)
		}
		return nil, err
	}

	balance := domain.Money{}
	wallet, err := s.walletRepo.FindWalletByPrincipalAndAsset(ctx, userID, assetTypeID)
	if err == nil {
		balance = wallet.Balance
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return &dto.BalanceResponse{
		UserID:        userID,
		AssetTypeID:   assetTypeID,
		AssetTypeCode: assetType.Code,
		Balance:       balance.String(),
	}, nil
}

// ListLedgerEntries returns one page of the wallet's statement, newest first.
// A user without a wallet row has an empty statement.
func (s *walletService) ListLedgerEntries(ctx context.Context, userID int64, assetTypeID int32, params dto.ListLedgerEntriesParams) (*dto.LedgerEntriesResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be positive", apperrors.ErrValidation)
	}
	if _, err := s.assetRepo.FindAssetTypeByID(ctx, assetTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown asset type %d", apperrors.ErrInvalidAsset, assetTypeID)
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultStatementLimit
	}
	if limit > maxStatementLimit {
		limit = maxStatementLimit
	}

	wallet, err := s.walletRepo.FindWalletByPrincipalAndAsset(ctx, userID, assetTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.LedgerEntriesResponse{Entries: []dto.LedgerEntryResponse{}}, nil
		}
		return nil, err
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByWalletID(ctx, wallet.ID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.LedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
