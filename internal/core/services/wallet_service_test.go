package services_test

import (
	"context"
	"testing"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/core/services"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockWallets    *MockWalletRepository
	mockLedger     *MockLedgerRepository
	mockAssetTypes *MockAssetTypeRepository
	service        portssvc.WalletSvcFacade
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockWallets = new(MockWalletRepository)
	s.mockLedger = new(MockLedgerRepository)
	s.mockAssetTypes = new(MockAssetTypeRepository)
	s.service = services.NewWalletService(s.mockWallets, s.mockLedger, s.mockAssetTypes)
}

func (s *WalletServiceTestSuite) money(v string) domain.Money {
	m, err := domain.NewMoneyFromString(v)
	s.Require().NoError(err)
	return m
}

func (s *WalletServiceTestSuite) TestGetBalance_ExistingWallet() {
	ctx := context.Background()
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(1)).Return(&domain.AssetType{ID: 1, Code: "COIN", IsActive: true}, nil)
	s.mockWallets.On("FindWalletByPrincipalAndAsset", ctx, int64(101), int32(1)).Return(&domain.Wallet{
		ID: 5, PrincipalID: 101, AssetTypeID: 1, Balance: s.money("42.5"),
	}, nil)

	balance, err := s.service.GetBalance(ctx, 101, 1)

	s.Require().NoError(err)
	s.Equal(int64(101), balance.UserID)
	s.Equal("COIN", balance.AssetTypeCode)
	s.Equal("42.50000000", balance.Balance)
}

func (s *WalletServiceTestSuite) TestGetBalance_MissingWalletReadsZero() {
	ctx := context.Background()
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(1)).Return(&domain.AssetType{ID: 1, Code: "COIN", IsActive: true}, nil)
	s.mockWallets.On("FindWalletByPrincipalAndAsset", ctx, int64(200), int32(1)).Return(nil, apperrors.ErrNotFound)

	balance, err := s.service.GetBalance(ctx, 200, 1)

	s.Require().NoError(err)
	s.Equal("0.00000000", balance.Balance)
}

func (s *WalletServiceTestSuite) TestGetBalance_UnknownAsset() {
	ctx := context.Background()
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(99)).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetBalance(ctx, 101, 99)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidAsset)
	s.mockWallets.AssertNotCalled(s.T(), "FindWalletByPrincipalAndAsset", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WalletServiceTestSuite) TestGetBalance_InvalidUser() {
	_, err := s.service.GetBalance(context.Background(), 0, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *WalletServiceTestSuite) TestListLedgerEntries_PagesStatement() {
	ctx := context.Background()
	nextToken := "token-next"
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(1)).Return(&domain.AssetType{ID: 1, Code: "COIN", IsActive: true}, nil)
	s.mockWallets.On("FindWalletByPrincipalAndAsset", ctx, int64(101), int32(1)).Return(&domain.Wallet{
		ID: 5, PrincipalID: 101, AssetTypeID: 1, Balance: s.money("10"),
	}, nil)
	s.mockLedger.On("ListEntriesByWalletID", ctx, int64(5), 2, (*string)(nil)).Return([]domain.LedgerEntry{
		{ID: 2, TransactionPublicID: "pub-2", WalletID: 5, EntryType: domain.Credit, Amount: s.money("4")},
		{ID: 1, TransactionPublicID: "pub-1", WalletID: 5, EntryType: domain.Credit, Amount: s.money("6")},
	}, &nextToken, nil)

	page, err := s.service.ListLedgerEntries(ctx, 101, 1, dto.ListLedgerEntriesParams{Limit: 2})

	s.Require().NoError(err)
	s.Len(page.Entries, 2)
	s.Require().NotNil(page.NextToken)
	s.Equal(nextToken, *page.NextToken)
	s.Equal("pub-2", page.Entries[0].TransactionID)
}

func (s *WalletServiceTestSuite) TestListLedgerEntries_ClampsLimit() {
	ctx := context.Background()
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(1)).Return(&domain.AssetType{ID: 1, Code: "COIN", IsActive: true}, nil)
	s.mockWallets.On("FindWalletByPrincipalAndAsset", ctx, int64(101), int32(1)).Return(&domain.Wallet{ID: 5}, nil)
	s.mockLedger.On("ListEntriesByWalletID", ctx, int64(5), 100, (*string)(nil)).Return([]domain.LedgerEntry{}, nil, nil)

	_, err := s.service.ListLedgerEntries(ctx, 101, 1, dto.ListLedgerEntriesParams{Limit: 5000})

	s.Require().NoError(err)
	s.mockLedger.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestListLedgerEntries_MissingWalletIsEmpty() {
	ctx := context.Background()
	s.mockAssetTypes.On("FindAssetTypeByID", ctx, int32(1)).Return(&domain.AssetType{ID: 1, Code: "COIN", IsActive: true}, nil)
	s.mockWallets.On("FindWalletByPrincipalAndAsset", ctx, int64(300), int32(1)).Return(nil, apperrors.ErrNotFound)

	page, err := s.service.ListLedgerEntries(ctx, 300, 1, dto.ListLedgerEntriesParams{})

	s.Require().NoError(err)
	s.Empty(page.Entries)
	s.Nil(page.NextToken)
	s.mockLedger.AssertNotCalled(s.T(), "ListEntriesByWalletID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
