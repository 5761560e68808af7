package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP statuses and a stable error
// code so callers can branch without parsing messages.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	var insufficientFunds *apperrors.InsufficientFundsError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "validation_error", "error": err.Error()})
	case errors.As(err, &insufficientFunds):
		logger.Warn("Insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error_code": "insufficient_funds", "error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidAsset):
		logger.Warn("Invalid asset type", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error_code": "invalid_asset", "error": err.Error()})
	case errors.Is(err, apperrors.ErrConfiguration):
		logger.Error("Configuration error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error_code": "configuration_error", "error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error_code": "not_found", "error": err.Error()})
	case errors.As(err, &appErr):
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error_code": "internal_error", "error": appErr.Message})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "internal_error", "error": "internal server error"})
	}
}
