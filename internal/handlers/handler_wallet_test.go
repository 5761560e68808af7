package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WalletHandlerTestSuite struct {
	TransactionHandlerTestSuite
}

func (s *WalletHandlerTestSuite) TestGetBalance() {
	s.mockWalletSvc.On("GetBalance", mock.Anything, int64(101), int32(1)).Return(&dto.BalanceResponse{
		UserID:        101,
		AssetTypeID:   1,
		AssetTypeCode: "COIN",
		Balance:       "42.50000000",
	}, nil)

	w := s.performJSON(http.MethodGet, "/api/v1/users/101/wallets/1/balance", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("42.50000000", resp.Balance)
	s.Equal("COIN", resp.AssetTypeCode)
}

func (s *WalletHandlerTestSuite) TestGetBalance_BadUserID() {
	w := s.performJSON(http.MethodGet, "/api/v1/users/notanumber/wallets/1/balance", nil)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.mockWalletSvc.AssertNotCalled(s.T(), "GetBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WalletHandlerTestSuite) TestGetBalance_UnknownAsset() {
	s.mockWalletSvc.On("GetBalance", mock.Anything, int64(101), int32(99)).Return(nil, apperrors.ErrInvalidAsset)

	w := s.performJSON(http.MethodGet, "/api/v1/users/101/wallets/99/balance", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WalletHandlerTestSuite) TestListLedgerEntries_ForwardsPaging() {
	token := "cursor-1"
	s.mockWalletSvc.On("ListLedgerEntries", mock.Anything, int64(101), int32(1), dto.ListLedgerEntriesParams{
		Limit:     5,
		NextToken: &token,
	}).Return(&dto.LedgerEntriesResponse{
		Entries: []dto.LedgerEntryResponse{
			{TransactionID: "pub-2", EntryType: "CREDIT", Amount: "4.00000000"},
		},
	}, nil)

	w := s.performJSON(http.MethodGet, "/api/v1/users/101/wallets/1/ledger?limit=5&next_token=cursor-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerEntriesResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Entries, 1)
	s.Equal("pub-2", resp.Entries[0].TransactionID)
}

func (s *WalletHandlerTestSuite) TestListLedgerEntries_BadLimit() {
	w := s.performJSON(http.MethodGet, "/api/v1/users/101/wallets/1/ledger?limit=-3", nil)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.mockWalletSvc.AssertNotCalled(s.T(), "ListLedgerEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
