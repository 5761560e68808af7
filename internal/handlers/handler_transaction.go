package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gamepay/wallet-service/internal/core/domain"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/gamepay/wallet-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for movements.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to movements.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/topup", h.createMovement(domain.TypeTopup))
		transactions.POST("/bonus", h.createMovement(domain.TypeBonus))
		transactions.POST("/spend", h.createMovement(domain.TypeSpend))
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

// createMovement returns the handler for one movement endpoint. All three
// endpoints share the request shape; the route fixes the movement type.
func (h *transactionHandler) createMovement(txnType domain.TransactionType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var req dto.CreateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind movement request", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "validation_error", "error": "Invalid request format: " + err.Error()})
			return
		}

		logger = logger.With(
			slog.String("transaction_type", string(txnType)),
			slog.Int64("user_id", req.UserID),
			slog.String("asset_type", req.AssetType),
		)
		logger.Info("Received movement request", slog.String("idempotency_key", req.IdempotencyKey))

		txn, err := h.transactionService.Process(c.Request.Context(), txnType, req)
		if err != nil {
			respondWithError(c, logger, err)
			return
		}

		// Replays return the original record with the same status; callers
		// cannot distinguish a replay from the first delivery.
		c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
	}
}

// getTransaction retrieves a movement and its two ledger legs by public ID.
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	publicID := c.Param("transactionID")

	txn, entries, err := h.transactionService.GetByPublicID(c.Request.Context(), publicID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("transaction_id", publicID)), err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionDetailResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Entries:     dto.ToLedgerEntryResponses(entries),
	})
}
