package handlers

import (
	"net/http"
	"time"

	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	"github.com/gamepay/wallet-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetTypeHandler serves the asset reference data.
type assetTypeHandler struct {
	assetTypes portsrepo.AssetTypeReader
}

// registerAssetTypeRoutes registers routes for asset reference data.
func registerAssetTypeRoutes(rg *gin.RouterGroup, assetTypes portsrepo.AssetTypeReader) {
	h := &assetTypeHandler{assetTypes: assetTypes}
	rg.GET("/assets", h.listAssetTypes)
}

type assetTypeResponse struct {
	ID          int32     `json:"id"`
	Code        string    `json:"code"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// listAssetTypes returns all active asset types.
func (h *assetTypeHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetTypes, err := h.assetTypes.ListActiveAssetTypes(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	responses := make([]assetTypeResponse, len(assetTypes))
	for i, a := range assetTypes {
		responses[i] = assetTypeResponse{
			ID:          a.ID,
			Code:        a.Code,
			DisplayName: a.DisplayName,
			CreatedAt:   a.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"assets": responses})
}
