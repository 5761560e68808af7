package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/gamepay/wallet-service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Process(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, txnType, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetByPublicID(ctx context.Context, publicID string) (*domain.Transaction, []domain.LedgerEntry, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).([]domain.LedgerEntry), args.Error(2)
}

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetBalance(ctx context.Context, userID int64, assetTypeID int32) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, userID, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

func (m *MockWalletService) ListLedgerEntries(ctx context.Context, userID int64, assetTypeID int32, params dto.ListLedgerEntriesParams) (*dto.LedgerEntriesResponse, error) {
	args := m.Called(ctx, userID, assetTypeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerEntriesResponse), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)
	_ portssvc.WalletSvcFacade      = (*MockWalletService)(nil)
)

// --- Mock AssetTypeReader ---
type MockAssetTypeReader struct {
	mock.Mock
}

func (m *MockAssetTypeReader) FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeReader) FindAssetTypeByID(ctx context.Context, id int32) (*domain.AssetType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeReader) ListActiveAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTxnService  *MockTransactionService
	mockWalletSvc   *MockWalletService
	mockAssetReader *MockAssetTypeReader
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockTxnService = new(MockTransactionService)
	s.mockWalletSvc = new(MockWalletService)
	s.mockAssetReader = new(MockAssetTypeReader)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &portssvc.ServiceContainer{
		Transaction: s.mockTxnService,
		Wallet:      s.mockWalletSvc,
	}, s.mockAssetReader)
}

func (s *TransactionHandlerTestSuite) performJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TransactionHandlerTestSuite) money(v string) domain.Money {
	m, err := domain.NewMoneyFromString(v)
	s.Require().NoError(err)
	return m
}

func (s *TransactionHandlerTestSuite) TestTopup_Created() {
	completedAt := time.Now().UTC()
	req := dto.CreateTransactionRequest{
		IdempotencyKey: "key-1",
		UserID:         101,
		AssetType:      "COIN",
		Amount:         "25.5",
	}
	s.mockTxnService.On("Process", mock.Anything, domain.TypeTopup, req).Return(&domain.Transaction{
		ID: 42, PublicID: "pub-42", IdempotencyKey: "key-1", Type: domain.TypeTopup,
		UserID: 101, AssetTypeID: 1, Amount: s.money("25.5"),
		Status: domain.StatusCompleted, CompletedAt: &completedAt,
	}, nil)

	w := s.performJSON(http.MethodPost, "/api/v1/transactions/topup", req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("pub-42", resp.TransactionID)
	s.Equal("25.50000000", resp.Amount)
	s.Equal("COMPLETED", resp.Status)
	s.mockTxnService.AssertExpectations(s.T())
}

func (s *TransactionHandlerTestSuite) TestTopup_BindingRejectsMalformedAmount() {
	body := map[string]interface{}{
		"idempotency_key": "key-1",
		"user_id":         101,
		"asset_type":      "COIN",
		"amount":          "1e5",
	}

	w := s.performJSON(http.MethodPost, "/api/v1/transactions/topup", body)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.mockTxnService.AssertNotCalled(s.T(), "Process", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionHandlerTestSuite) TestTopup_BindingRejectsMissingFields() {
	w := s.performJSON(http.MethodPost, "/api/v1/transactions/topup", map[string]interface{}{
		"amount": "10",
	})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *TransactionHandlerTestSuite) TestSpend_InsufficientFunds() {
	req := dto.CreateTransactionRequest{
		IdempotencyKey: "key-2",
		UserID:         7,
		AssetType:      "COIN",
		Amount:         "10",
	}
	s.mockTxnService.On("Process", mock.Anything, domain.TypeSpend, req).Return(nil, &apperrors.InsufficientFundsError{
		Balance:  s.money("5"),
		Required: s.money("10"),
	})

	w := s.performJSON(http.MethodPost, "/api/v1/transactions/spend", req)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("insufficient_funds", resp["error_code"])
}

func (s *TransactionHandlerTestSuite) TestBonus_InvalidAsset() {
	req := dto.CreateTransactionRequest{
		IdempotencyKey: "key-3",
		UserID:         7,
		AssetType:      "SHELL",
		Amount:         "10",
	}
	s.mockTxnService.On("Process", mock.Anything, domain.TypeBonus, req).Return(nil, apperrors.ErrInvalidAsset)

	w := s.performJSON(http.MethodPost, "/api/v1/transactions/bonus", req)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("invalid_asset", resp["error_code"])
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_WithLegs() {
	txn := &domain.Transaction{
		ID: 42, PublicID: "pub-42", IdempotencyKey: "key-1", Type: domain.TypeTopup,
		UserID: 101, AssetTypeID: 1, Amount: s.money("25.5"), Status: domain.StatusCompleted,
	}
	entries := []domain.LedgerEntry{
		{ID: 1, TransactionPublicID: "pub-42", WalletID: 1, EntryType: domain.Debit, Amount: s.money("25.5")},
		{ID: 2, TransactionPublicID: "pub-42", WalletID: 5, EntryType: domain.Credit, Amount: s.money("25.5")},
	}
	s.mockTxnService.On("GetByPublicID", mock.Anything, "pub-42").Return(txn, entries, nil)

	w := s.performJSON(http.MethodGet, "/api/v1/transactions/pub-42", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionDetailResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("pub-42", resp.Transaction.TransactionID)
	s.Require().Len(resp.Entries, 2)
	s.Equal("DEBIT", resp.Entries[0].EntryType)
	s.Equal("CREDIT", resp.Entries[1].EntryType)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	s.mockTxnService.On("GetByPublicID", mock.Anything, "missing").Return(nil, nil, apperrors.ErrNotFound)

	w := s.performJSON(http.MethodGet, "/api/v1/transactions/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TransactionHandlerTestSuite) TestHealth() {
	w := s.performJSON(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("healthy", resp["status"])
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
