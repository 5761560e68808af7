package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/gamepay/wallet-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests for wallet reads.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallet reads.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	users := rg.Group("/users/:userID")
	{
		users.GET("/wallets/:assetTypeID/balance", h.getBalance)
		users.GET("/wallets/:assetTypeID/ledger", h.listLedgerEntries)
	}
}

func parseWalletParams(c *gin.Context) (int64, int32, bool) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "validation_error", "error": "userID must be a positive integer"})
		return 0, 0, false
	}
	assetTypeID, err := strconv.ParseInt(c.Param("assetTypeID"), 10, 32)
	if err != nil || assetTypeID <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "validation_error", "error": "assetTypeID must be a positive integer"})
		return 0, 0, false
	}
	return userID, int32(assetTypeID), true
}

// getBalance retrieves the balance for a (user, asset) pair. Users without a
// wallet row read as zero.
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, assetTypeID, ok := parseWalletParams(c)
	if !ok {
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), userID, assetTypeID)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("user_id", userID)), err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// listLedgerEntries retrieves one page of a wallet's statement, newest first.
func (h *walletHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, assetTypeID, ok := parseWalletParams(c)
	if !ok {
		return
	}

	params := dto.ListLedgerEntriesParams{}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "validation_error", "error": "limit must be a positive integer"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("next_token"); token != "" {
		params.NextToken = &token
	}

	page, err := h.walletService.ListLedgerEntries(c.Request.Context(), userID, assetTypeID, params)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("user_id", userID)), err)
		return
	}
	c.JSON(http.StatusOK, page)
}
